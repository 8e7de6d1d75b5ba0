package view

import (
	"encoding/json"

	"github.com/goliatone/go-sitekit/internal/components"
	"github.com/goliatone/go-sitekit/internal/i18n"
)

// DefaultContent returns the built-in node sequence rendered when the home
// view has no usable page record. It keeps the site's entry point presentable
// while content is being authored or the store is unreachable.
func DefaultContent(lang i18n.Language) []components.Node {
	hero := map[string]any{
		"title":    "欢迎访问我们的网站",
		"subtitle": "内容正在准备中",
	}
	text := map[string]any{
		"title":   "关于本站",
		"content": "站点内容暂未发布，请稍后再来。",
	}
	if lang == i18n.LanguageEN {
		hero = map[string]any{
			"title":    "Welcome to our website",
			"subtitle": "Content is on its way",
		}
		text = map[string]any{
			"title":   "About this site",
			"content": "Nothing has been published yet. Please check back soon.",
		}
	}

	return []components.Node{
		{ID: "default-hero", Type: components.NodeHero, Data: mustData(hero)},
		{ID: "default-text", Type: components.NodeText, Data: mustData(text)},
	}
}

func mustData(value map[string]any) json.RawMessage {
	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return data
}
