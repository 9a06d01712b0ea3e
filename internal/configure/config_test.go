package configure

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"

	"github.com/washtime/api/internal/testutil"
)

func TestDefaultsApply(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(defaultConfig())
	testutil.IsNil(t, err, "defaults marshal")

	config := viper.New()
	tmp := viper.New()
	tmp.SetConfigType("json")
	testutil.IsNil(t, tmp.ReadConfig(bytes.NewReader(b)), "defaults parse")
	testutil.IsNil(t, config.MergeConfigMap(tmp.AllSettings()), "defaults merge")

	c := Config{}
	testutil.IsNil(t, config.Unmarshal(&c), "config unmarshals")
	testutil.Assert(t, 10, c.Limits.DefaultPage, "default page size")
	testutil.Assert(t, 100, c.Limits.MaxPage, "page size cap")
	testutil.Assert(t, "config.yaml", c.ConfigFile, "config file location")
}

func TestLabelsToPrometheus(t *testing.T) {
	t.Parallel()

	labels := Labels{
		{Key: "app", Value: "api-gateway"},
		{Key: "region", Value: "eu"},
	}

	mp := labels.ToPrometheus()
	testutil.Assert(t, 2, len(mp), "label count")
	testutil.Assert(t, "api-gateway", mp["app"], "app label")
	testutil.Assert(t, "eu", mp["region"], "region label")
}
