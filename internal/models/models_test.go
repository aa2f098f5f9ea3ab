package models_test

import (
	"testing"

	"github.com/fussel132/hue-controller/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLight = `{"name":"Hall","state":{"on":false,"reachable":true},"config":{"startup":{"mode":"safety","configured":true}},"swupdate":{"state":"noupdates","lastinstall":null},"swversion":"1.93.11","modelid":"LCT015"}`

func Test_ParseSnapshot(t *testing.T) {

	t.Run("should decode lights, groups and scenes", func(t *testing.T) {
		doc := `{"lights":{"1":` + validLight + `},"groups":{"2":{"name":"Living","type":"Room","lights":["1"]}},"scenes":{"x1":{"name":"Relax","lights":[]}},"config":{"name":"Philips hue"}}`

		snapshot, err := models.ParseSnapshot([]byte(doc))

		require.NoError(t, err)
		light := snapshot.Lights["1"]
		assert.Equal(t, "Hall", light.Name)
		assert.False(t, light.State.On)
		assert.True(t, light.State.Reachable)
		assert.Equal(t, "safety", light.Config.Startup.Mode)
		assert.True(t, light.Config.Startup.Configured)
		assert.Equal(t, "", light.SwUpdate.LastInstall)
		assert.Equal(t, "Room", snapshot.Groups["2"].Type)
		assert.Equal(t, []string{}, snapshot.Scenes["x1"].Lights)
		assert.Equal(t, doc, string(snapshot.Raw))
	})

	tests := []struct {
		name     string
		doc      string
		contains string
	}{
		{name: "not json", doc: `<html>`, contains: "error parsing bridge snapshot"},
		{name: "null document", doc: `null`, contains: "missing lights"},
		{name: "missing scenes", doc: `{"lights":{},"groups":{}}`, contains: "missing scenes"},
		{name: "light without state", doc: `{"lights":{"7":{"name":"a","config":{"startup":{}},"swupdate":{},"swversion":"1","modelid":"m"}},"groups":{},"scenes":{}}`, contains: "light 7: missing state"},
		{name: "light with null state", doc: `{"lights":{"7":{"name":"a","state":null,"config":{"startup":{}},"swupdate":{},"swversion":"1","modelid":"m"}},"groups":{},"scenes":{}}`, contains: "light 7: missing state"},
		{name: "light without startup", doc: `{"lights":{"7":{"name":"a","state":{},"config":{},"swupdate":{},"swversion":"1","modelid":"m"}},"groups":{},"scenes":{}}`, contains: "light 7: missing config.startup"},
		{name: "light without swupdate", doc: `{"lights":{"7":{"name":"a","state":{},"config":{"startup":{}},"swversion":"1","modelid":"m"}},"groups":{},"scenes":{}}`, contains: "light 7: missing swupdate"},
		{name: "light without name", doc: `{"lights":{"7":{"state":{},"config":{"startup":{}},"swupdate":{},"swversion":"1","modelid":"m"}},"groups":{},"scenes":{}}`, contains: "light 7: missing name"},
		{name: "light without swversion", doc: `{"lights":{"7":{"name":"a","state":{},"config":{"startup":{}},"swupdate":{},"modelid":"m"}},"groups":{},"scenes":{}}`, contains: "light 7: missing swversion"},
		{name: "light without modelid", doc: `{"lights":{"7":{"name":"a","state":{},"config":{"startup":{}},"swupdate":{},"swversion":"1"}},"groups":{},"scenes":{}}`, contains: "light 7: missing modelid"},
		{name: "group without type", doc: `{"lights":{},"groups":{"3":{"name":"g","lights":[]}},"scenes":{}}`, contains: "group 3: missing type"},
		{name: "scene without name", doc: `{"lights":{},"groups":{},"scenes":{"s":{"lights":[]}}}`, contains: "scene s: missing name"},
		{name: "group without lights", doc: `{"lights":{},"groups":{"3":{"name":"g","type":"Room"}},"scenes":{}}`, contains: "group 3: missing lights"},
		{name: "scene without lights", doc: `{"lights":{},"groups":{},"scenes":{"s":{"name":"x"}}}`, contains: "scene s: missing lights"},
	}

	for _, tt := range tests {
		t.Run(tt.name+": should fail", func(t *testing.T) {
			snapshot, err := models.ParseSnapshot([]byte(tt.doc))

			assert.Nil(t, snapshot)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
