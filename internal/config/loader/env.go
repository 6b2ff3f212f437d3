package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader reads PREFIX_SECTION_KEY variables as section.key settings,
// e.g. BOXEDIT_BLINK_ON_MS sets blink.on_ms. Overrides name variables
// that do not follow that rule. An empty value is still a value.
type EnvLoader struct {
	prefix    string
	overrides map[string]string
}

// NewEnvLoader returns a loader for variables starting with prefix,
// which includes the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		overrides: map[string]string{
			prefix + "CHORD":     "chord.keys",
			prefix + "TAB_WIDTH": "editor.tab_width",
		},
	}
}

// AddMapping routes envVar to the dotted settings path.
func (l *EnvLoader) AddMapping(envVar, path string) {
	l.overrides[envVar] = path
}

func (l *EnvLoader) Load() (map[string]any, error) {
	out := make(map[string]any)
	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, ok := l.overrides[name]
		if !ok {
			path = l.envToPath(name)
		}
		if path != "" {
			setPath(out, strings.Split(path, "."), parseValue(value))
		}
	}
	return out, nil
}

// envToPath splits the name after the prefix at its first underscore.
// Names without a key part map to "".
func (l *EnvLoader) envToPath(name string) string {
	section, key, _ := strings.Cut(strings.ToLower(strings.TrimPrefix(name, l.prefix)), "_")
	if section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue reads booleans and integers. Anything else stays a string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

func setPath(m map[string]any, keys []string, v any) {
	for _, k := range keys[:len(keys)-1] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = make(map[string]any)
			m[k] = sub
		}
		m = sub
	}
	m[keys[len(keys)-1]] = v
}
