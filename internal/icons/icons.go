// Package icons maps game stat names, markup image names and effect types to
// the display tokens the presentation layer renders.
//
// Every lookup falls back to the empty string; a missing icon never fails a render.
package icons

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Set holds every icon table used when expanding descriptions
type Set struct {
	// Stats maps stat names ("Max Health", "Dodge") to tokens.
	// Keys with a trailing "1" ("Current Health1") are the labelled forms used in ratios.
	Stats map[string]string `yaml:"stats"`

	// StatKeys maps the $KEY$ macros that name an icon directly ("ARMOR_ICON")
	StatKeys map[string]string `yaml:"stat_keys"`

	// Images maps markup image base names ("Icon_Timer_Med") to tokens
	Images map[string]string `yaml:"images"`

	// Effects maps damage-over-time info damage types ("Bleed", "Poison") to tokens
	Effects map[string]string `yaml:"damage_over_time"`

	// RequirementLabel is substituted for $eReqIcon$
	RequirementLabel string `yaml:"requirement_label"`
}

// Stat returns the token for a stat name
func (s *Set) Stat(name string) string {
	return s.Stats[name]
}

// StatKey returns the token for a direct $KEY$ macro
func (s *Set) StatKey(key string) (string, bool) {
	token, ok := s.StatKeys[key]
	return token, ok
}

// Image returns the token for a markup image base name
func (s *Set) Image(base string) (string, bool) {
	token, ok := s.Images[base]
	return token, ok
}

// DamageOverTime returns the token for a damage-over-time effect type
func (s *Set) DamageOverTime(effect string) string {
	return s.Effects[effect]
}

// DamageType returns the token for a damage type.
// Inherit renders both physical and magical icons.
func (s *Set) DamageType(damageType string) string {
	if damageType == entities.DamageTypeInherit {
		return s.Stat(StatPhysicalDamage) + "/" + s.Stat(StatMagicalDamage)
	}
	return s.Stat(damageType)
}

// Load reads a YAML icon file and overlays it onto the defaults.
// A missing file yields the defaults.
func Load(path string) (*Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, errors.Wrapf(err, "failed to read icons %s", path)
	}

	var overlay Set
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse icons "+path)
	}

	merge(set.Stats, overlay.Stats)
	merge(set.StatKeys, overlay.StatKeys)
	merge(set.Images, overlay.Images)
	merge(set.Effects, overlay.Effects)
	if overlay.RequirementLabel != "" {
		set.RequirementLabel = overlay.RequirementLabel
	}

	return set, nil
}

func merge(dst, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
