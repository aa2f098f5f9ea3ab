package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/amimof/huego"
)

// the full state document returned by the bridge root endpoint (/api/<key>/)
type Snapshot struct {
	Lights map[string]Light `json:"lights"`
	Groups map[string]Group `json:"groups"`
	Scenes map[string]Scene `json:"scenes"`

	// the document exactly as the bridge sent it
	Raw json.RawMessage `json:"-"`
}

type Light struct {
	Name      string       `json:"name"`
	State     *huego.State `json:"state"`
	Config    *LightConfig `json:"config"`
	SwUpdate  *SwUpdate    `json:"swupdate"`
	SwVersion string       `json:"swversion"`
	ModelID   string       `json:"modelid"`
}

type LightConfig struct {
	Startup *Startup `json:"startup"`
}

// power-on behaviour of a light
type Startup struct {
	Mode       string `json:"mode"`
	Configured bool   `json:"configured"`
}

type SwUpdate struct {
	State       string `json:"state"`
	LastInstall string `json:"lastinstall"`
}

// a room, zone or other light group
type Group struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Lights []string `json:"lights"`
}

type Scene struct {
	Name   string   `json:"name"`
	Lights []string `json:"lights"`
}

// ParseSnapshot decodes a full state document, failing if anything the report relies on is absent.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	snapshot := Snapshot{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("error parsing bridge snapshot: %w", err)
	}
	if err := checkRequiredKeys(data); err != nil {
		return nil, err
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	snapshot.Raw = append(json.RawMessage(nil), data...)
	return &snapshot, nil
}

// keys every entity of a section must carry (a null value counts as missing)
var requiredKeys = []struct {
	entity string
	keys   []string
}{
	{entity: "light", keys: []string{"name", "state", "config", "swupdate", "swversion", "modelid"}},
	{entity: "group", keys: []string{"name", "type", "lights"}},
	{entity: "scene", keys: []string{"name", "lights"}},
}

// checkRequiredKeys catches fields that would otherwise decode silently to their zero value.
func checkRequiredKeys(data []byte) error {
	var doc struct {
		Lights map[string]map[string]json.RawMessage `json:"lights"`
		Groups map[string]map[string]json.RawMessage `json:"groups"`
		Scenes map[string]map[string]json.RawMessage `json:"scenes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("error parsing bridge snapshot: %w", err)
	}

	sections := []map[string]map[string]json.RawMessage{doc.Lights, doc.Groups, doc.Scenes}

	var errs []error
	for i, section := range sections {
		ids := make([]string, 0, len(section))
		for id := range section {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			for _, key := range requiredKeys[i].keys {
				value, ok := section[id][key]
				if !ok || string(bytes.TrimSpace(value)) == "null" {
					errs = append(errs, fmt.Errorf("%s %s: missing %s", requiredKeys[i].entity, id, key))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid bridge snapshot: %w", errors.Join(errs...))
	}
	return nil
}

// Validate checks that every required field of the snapshot was present in the document.
func (s *Snapshot) Validate() error {
	var errs []error

	if s.Lights == nil {
		errs = append(errs, errors.New("missing lights"))
	}
	if s.Groups == nil {
		errs = append(errs, errors.New("missing groups"))
	}
	if s.Scenes == nil {
		errs = append(errs, errors.New("missing scenes"))
	}

	for id, light := range s.Lights {
		if err := light.validate(); err != nil {
			errs = append(errs, fmt.Errorf("light %s: %w", id, err))
		}
	}
	for id, group := range s.Groups {
		if group.Lights == nil {
			errs = append(errs, fmt.Errorf("group %s: missing lights", id))
		}
	}
	for id, scene := range s.Scenes {
		if scene.Lights == nil {
			errs = append(errs, fmt.Errorf("scene %s: missing lights", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid bridge snapshot: %w", errors.Join(errs...))
	}
	return nil
}

func (l Light) validate() error {
	switch {
	case l.State == nil:
		return errors.New("missing state")
	case l.Config == nil || l.Config.Startup == nil:
		return errors.New("missing config.startup")
	case l.SwUpdate == nil:
		return errors.New("missing swupdate")
	}
	return nil
}
