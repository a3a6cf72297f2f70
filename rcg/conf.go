package rcg

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// rcssserver writes its configuration as "server::name = value" and
// "player::name = value" lines. Only '=' separates key and value, so the
// namespaced keys survive intact.
var confLoadOptions = ini.LoadOptions{
	KeyValueDelimiters:  "=",
	IgnoreInlineComment: true,
}

// LoadServerConf reads a server.conf source (file name, []byte or
// io.Reader) into p. Keys of other namespaces are ignored; unknown
// server keys and bad values are returned as ParamErrors after every
// valid key was applied.
func LoadServerConf(p *ServerParam, src any) error {
	return loadConf(serverParamRegistry, p, "server::", src)
}

// LoadPlayerConf reads a player.conf source into p.
func LoadPlayerConf(p *PlayerParam, src any) error {
	return loadConf(playerParamRegistry, p, "player::", src)
}

func loadConf[T any](reg *Registry[T], p *T, prefix string, src any) error {
	f, err := ini.LoadSources(confLoadOptions, src)
	if err != nil {
		return fmt.Errorf("rcg: load %s conf: %w", strings.TrimSuffix(prefix, "::"), err)
	}
	var perrs ParamErrors
	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			name, ok := strings.CutPrefix(strings.TrimSpace(key.Name()), prefix)
			if !ok {
				continue
			}
			if err := reg.SetValue(p, name, key.Value()); err != nil {
				var pe *ParamError
				if errors.As(err, &pe) {
					perrs = append(perrs, pe)
				}
			}
		}
	}
	if len(perrs) > 0 {
		return perrs
	}
	return nil
}
