package i18n

// Caption keys for the built-in UI strings the renderer and view layer fall
// back to when authored content omits a text field.
const (
	CaptionEmptyPage      = "page.empty"
	CaptionPageNotFound   = "page.not_found"
	CaptionPageLoadFailed = "page.load_failed"
	CaptionMenuLoadFailed = "menu.load_failed"
	CaptionNoContent      = "grid.no_content"
	CaptionLoadingImage   = "image.loading"
	CaptionImageAlt       = "image.alt"
	CaptionButtonText     = "button.text"
)

var captions = map[Language]map[string]string{
	LanguageZH: {
		CaptionEmptyPage:      "页面内容为空",
		CaptionPageNotFound:   "页面不存在",
		CaptionPageLoadFailed: "获取页面失败",
		CaptionMenuLoadFailed: "获取菜单失败",
		CaptionNoContent:      "暂无内容",
		CaptionLoadingImage:   "图片加载中...",
		CaptionImageAlt:       "图片",
		CaptionButtonText:     "按钮文字",
	},
	LanguageEN: {
		CaptionEmptyPage:      "Page content is empty",
		CaptionPageNotFound:   "Page not found",
		CaptionPageLoadFailed: "Failed to load page",
		CaptionMenuLoadFailed: "Failed to load menus",
		CaptionNoContent:      "No content",
		CaptionLoadingImage:   "Loading image...",
		CaptionImageAlt:       "Image",
		CaptionButtonText:     "Button Text",
	},
}

// Caption returns the built-in UI string for the language. Unknown languages
// resolve through the default language; unknown keys return the key itself so
// a missed lookup stays visible instead of rendering blank.
func Caption(lang Language, key string) string {
	table, ok := captions[lang]
	if !ok {
		table = captions[DefaultLanguage]
	}
	if value, ok := table[key]; ok {
		return value
	}
	return key
}
