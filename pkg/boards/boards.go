// Package boards хранит пресеты шаблонов доски.
// Пресеты объявлены в YAML и вшиты в бинарь: сервер не зависит от
// рабочей директории, а список правится без перекомпиляции логики.
package boards

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed boards.yaml
var boardsYAML []byte

type preset struct {
	Name  string   `yaml:"name"`
	Roles []string `yaml:"roles"`
}

type boardFile struct {
	Presets []preset `yaml:"presets"`
}

var presets = func() map[string][]string {
	var file boardFile
	if err := yaml.Unmarshal(boardsYAML, &file); err != nil {
		panic(fmt.Sprintf("embedded boards.yaml is broken: %v", err))
	}
	m := make(map[string][]string, len(file.Presets))
	for _, p := range file.Presets {
		if p.Name == "" || len(p.Roles) == 0 {
			panic(fmt.Sprintf("embedded boards.yaml has an empty preset: %+v", p))
		}
		m[p.Name] = p.Roles
	}
	return m
}()

// Preset возвращает список имен ролей пресета.
func Preset(name string) ([]string, bool) {
	roles, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out, true
}

// Names перечисляет имена всех пресетов (для отладочных ручек).
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	return out
}
