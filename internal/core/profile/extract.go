package profile

import (
	"bytes"
	"encoding/json"
	"strings"

	"golang.org/x/net/html"
)

// ExtractDisplayName pulls a display name for the handle out of the page's
// embedded metadata. JSON-LD is checked first since it carries the bare name;
// og:title and <title> need the " (@handle)" marker stripped.
func ExtractDisplayName(page []byte, handle string) (string, bool) {
	if name := extractJSONLDName(page); name != "" {
		return name, true
	}

	meta := extractTitleTags(page)

	if name := cleanPageTitle(meta.OGTitle, handle); name != "" {
		return name, true
	}

	if name := cleanPageTitle(meta.Title, handle); name != "" {
		return name, true
	}

	return "", false
}

func extractJSONLDName(page []byte) string {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var name string

	var traverse func(*html.Node)

	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, attr := range n.Attr {
				if attr.Key == "type" && attr.Val == "application/ld+json" {
					if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
						if found := parseLDName(n.FirstChild.Data); found != "" {
							name = found
						}
					}
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	return name
}

func parseLDName(data string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return ""
	}

	return ldNameFromValue(v)
}

func ldNameFromValue(v interface{}) string {
	switch m := v.(type) {
	case map[string]interface{}:
		if name := ldNameFromMap(m); name != "" {
			return name
		}

		// Profile pages nest the person under mainEntity or @graph
		if entity, ok := m["mainEntity"]; ok {
			if name := ldNameFromValue(entity); name != "" {
				return name
			}
		}

		if graph, ok := m["@graph"].([]interface{}); ok {
			for _, item := range graph {
				if name := ldNameFromValue(item); name != "" {
					return name
				}
			}
		}
	case []interface{}:
		for _, item := range m {
			if name := ldNameFromValue(item); name != "" {
				return name
			}
		}
	}

	return ""
}

func ldNameFromMap(m map[string]interface{}) string {
	t, ok := m["@type"].(string)
	if !ok {
		return ""
	}

	if t != "Person" && t != "ProfilePage" {
		return ""
	}

	if name, ok := m["name"].(string); ok {
		return strings.TrimSpace(name)
	}

	return ""
}

type titleTags struct {
	Title   string
	OGTitle string
}

func extractTitleTags(page []byte) titleTags {
	var tags titleTags

	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return tags
	}

	var traverse func(*html.Node)

	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					tags.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "meta":
				applyTitleMeta(n, &tags)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	return tags
}

func applyTitleMeta(n *html.Node, tags *titleTags) {
	var name, content string

	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "name", "property":
			name = attr.Val
		case "content":
			content = attr.Val
		}
	}

	if strings.ToLower(name) == "og:title" {
		tags.OGTitle = content
	}
}

// cleanPageTitle strips the "(@handle)" marker and the "• Instagram" tail
// from a page title, leaving the bare display name.
func cleanPageTitle(title, handle string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	if idx := strings.Index(title, " (@"); idx >= 0 {
		title = title[:idx]
	}

	if idx := strings.Index(title, "• Instagram"); idx >= 0 {
		title = title[:idx]
	}

	title = strings.TrimSpace(title)

	if title == "" || strings.EqualFold(title, handle) || strings.EqualFold(title, "Instagram") {
		return ""
	}

	return title
}
