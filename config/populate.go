package config

import (
	"reflect"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
)

var durationType = reflect.TypeOf(time.Duration(0))

func reflectConfigType() reflect.Type {
	return reflect.TypeOf(Config{})
}

// populateConfig decodes the viper tree into cw. Environment overrides are only
// visible through viper's getters, so every known key is read explicitly.
func populateConfig(cw *ConfigWrapper) (*Config, error) {
	settings := map[string]interface{}{}
	for key, typ := range configKeys(reflectConfigType(), "data") {
		if !viper.IsSet(key) {
			continue
		}
		setPath(settings, strings.Split(key, "."), typedValue(key, typ))
	}
	json := jsoniter.Config{
		EscapeHTML:    true,
		SortMapKeys:   true,
		CaseSensitive: false,
	}.Froze()
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, cw); err != nil {
		return nil, err
	}
	return &cw.Config, nil
}

// configKeys maps the lower-cased dotted keys of the leaf fields of t to their types.
func configKeys(t reflect.Type, prefix string) map[string]reflect.Type {
	keys := map[string]reflect.Type{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		key := prefix + "." + strings.ToLower(f.Name)
		if f.Type.Kind() == reflect.Struct {
			for k, v := range configKeys(f.Type, key) {
				keys[k] = v
			}
			continue
		}
		keys[key] = f.Type
	}
	return keys
}

func typedValue(key string, typ reflect.Type) interface{} {
	if typ == durationType {
		return viper.GetDuration(key)
	}
	switch typ.Kind() {
	case reflect.Bool:
		return viper.GetBool(key)
	case reflect.Int:
		return viper.GetInt(key)
	case reflect.String:
		return viper.GetString(key)
	default:
		return viper.Get(key)
	}
}

func setPath(m map[string]interface{}, path []string, value interface{}) {
	for _, p := range path[:len(path)-1] {
		next, ok := m[p].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			m[p] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}
