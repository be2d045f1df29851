package web

import (
	"embed"
	"encoding/json"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates разбирает встроенные шаблоны страницы дашборда
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"json":      toJSON,
		"hasInt":    hasInt,
		"hasString": hasString,
	}).ParseFS(files, "templates/*.html")
}

func toJSON(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

// hasInt: nil выборка означает "выбрано все"
func hasInt(selected []int, v int) bool {
	if selected == nil {
		return true
	}
	for _, s := range selected {
		if s == v {
			return true
		}
	}
	return false
}

func hasString(selected []string, v string) bool {
	if selected == nil {
		return true
	}
	for _, s := range selected {
		if s == v {
			return true
		}
	}
	return false
}
