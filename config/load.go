package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

// LoadWithEnv reads <name>.yaml from the working directory or one of dirs (relative to it),
// then lets environment variables override any key. AZURE_ACCOUNTNAME sets azure.accountName.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	tree := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, tree), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return cfg, nil
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := []string{filename}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, filename))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in any search path", filename)
}

// decoderConfig lets env strings fill durations, ints and comma separated lists.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
}

// canonicalizeEnvKey turns an env name into a koanf path, borrowing the spelling of keys
// already present in the yaml tree. Unknown segments stay lower case.
func canonicalizeEnvKey(envKey string, tree map[string]any) string {
	var path []string

	for _, segment := range strings.Split(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(tree, segment)
		path = append(path, key)
		tree = child
	}

	return strings.Join(path, ".")
}

func matchKey(tree map[string]any, segment string) (string, map[string]any) {
	want := squash(segment)
	for key, value := range tree {
		if squash(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

// squash lower-cases s and drops everything but letters and digits.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD} until an index
// has no host or port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		field := func(name string) string {
			return getenv(fmt.Sprintf("POSTGRES_REPLICAS_%d_%s", i, name))
		}

		host, port := field("HOST"), field("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: field("USERNAME"),
			Password: field("PASSWORD"),
		})
	}
}
