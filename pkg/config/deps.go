package config

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/types"
)

var depType = reflect.TypeOf(types.Dep{})

// depHookFunc decodes raw dependency entries into types.Dep
func depHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != depType {
			return data, nil
		}
		return decodeDep(data)
	}
}

// decodeDep accepts the dependency forms a project file can hold:
//
//	"cowboy"                               bare name, kept as an atom
//	{ name = "cowboy", version = "2.10.0" } table, name kept as a string
//	["cowboy", "2.10.0"]                   list, name from the first element
//	[]byte("cowboy")                       byte string, kept as binary
func decodeDep(data interface{}) (types.Dep, error) {
	switch v := data.(type) {
	case types.Dep:
		return v, nil
	case string:
		if v == "" {
			return types.Dep{}, errors.New(errors.ErrConfigParse, "dependency name is empty")
		}
		return types.Dep{Name: types.AtomName(v)}, nil
	case []byte:
		if len(v) == 0 {
			return types.Dep{}, errors.New(errors.ErrConfigParse, "dependency name is empty")
		}
		return types.Dep{Name: types.BinaryName(v)}, nil
	case map[string]interface{}:
		return decodeDepTable(v)
	case []interface{}:
		if len(v) == 0 {
			return types.Dep{}, errors.New(errors.ErrConfigParse, "dependency list is empty")
		}
		dep, err := decodeDep(v[0])
		if err != nil {
			return types.Dep{}, err
		}
		if len(v) > 1 {
			dep.Spec = fmt.Sprint(v[1])
		}
		return dep, nil
	}
	return types.Dep{}, errors.Newf(errors.ErrConfigParse, "unsupported dependency entry of type %T", data)
}

func decodeDepTable(table map[string]interface{}) (types.Dep, error) {
	var dep types.Dep
	switch name := table["name"].(type) {
	case string:
		if name == "" {
			return types.Dep{}, errors.New(errors.ErrConfigParse, "dependency name is empty")
		}
		dep.Name = types.StringName(name)
	case []byte:
		dep.Name = types.BinaryName(name)
	case nil:
		return types.Dep{}, errors.New(errors.ErrConfigParse, "dependency table has no name")
	default:
		return types.Dep{}, errors.Newf(errors.ErrConfigParse, "dependency name has unsupported type %T", name)
	}

	if version, ok := table["version"]; ok {
		dep.Spec = fmt.Sprint(version)
	}
	return dep, nil
}
