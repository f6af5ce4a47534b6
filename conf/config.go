package conf

/*
   This package wraps viper to provide configuration to the edi837 app.
   Configuration is read once from an env file when one is present, and
   falls through to plain environment variables otherwise. The env file,
   once loaded, is treated as immutable for the uptime of the process
   (tests being the exception, via SetEnv/UnsetEnv).
*/

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// An instance of the viper struct holding the loaded configuration. Only
// made accessible through GetEnv, LookupEnv, SetEnv, and UnsetEnv.
var envVars viper.Viper

const (
	configgood    uint8 = 0
	configbad     uint8 = 1
	noconfigfound uint8 = 2
)

var state uint8 = configgood

// setup reads and parses the env file found under dir.
func setup(dir string) *viper.Viper {
	var v = viper.New()
	v.SetConfigName("local")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	var err = v.ReadInConfig()

	if err != nil {
		state = configbad
	}

	return v
}

func init() {
	if success, loc := findEnv(configLocations()); success {
		envVars = *setup(loc)
	} else {
		state = noconfigfound
	}
}

// configLocations returns the candidate directories for local.env. An
// explicit EDI_CONFIG_DIR wins over the deployed default.
func configLocations() []string {
	locations := []string{"/usr/local/edi837-app/conf"}
	if dir, ok := os.LookupEnv("EDI_CONFIG_DIR"); ok {
		locations = append([]string{dir}, locations...)
	}
	return locations
}

func findEnv(locations []string) (bool, string) {
	for _, loc := range locations {
		if _, err := os.Stat(loc + "/local.env"); err == nil {
			return true, loc
		}
	}
	return false, ""
}

// GetEnv retrieves the value stored in conf. If it does not exist, ""
// is returned.
func GetEnv(key string) string {
	if state == configgood {
		var value = envVars.GetString(key)

		// Even when the config file loaded, a key absent from it may
		// still live in the environment. Copy it over to conf to
		// prevent additional OS calls.
		if value == "" {
			v, ok := os.LookupEnv(key)
			if ok {
				test := &testing.T{}
				var _ = SetEnv(test, key, v)
				value = v
			}
		}

		return value
	}

	return os.Getenv(key)
}

// LookupEnv augments os.LookupEnv to look in the viper struct first.
func LookupEnv(key string) (string, bool) {
	if state == configgood {
		if value := envVars.Get(key); value != nil && value != "" {
			return value.(string), true
		}
		if v, exist := os.LookupEnv(key); exist {
			test := &testing.T{}
			var _ = SetEnv(test, key, v)
			return v, exist
		}

		return "", false
	}

	return os.LookupEnv(key)
}

// SetEnv adds key/value pairs to conf. It should only be used by this
// package itself or by tests; the *testing.T parameter is there to make
// callers acknowledge that scope.
func SetEnv(protect *testing.T, key string, value string) error {
	var err error

	if state == configgood {
		envVars.Set(key, value)
	} else {
		err = os.Setenv(key, value)
	}

	return err
}

// UnsetEnv "unsets" a variable. Like SetEnv, only for this package and
// tests. The environment copy is removed too, since GetEnv may have
// mirrored the value there.
func UnsetEnv(protect *testing.T, key string) error {
	if state == configgood {
		envVars.Set(key, "")
	}

	return os.Unsetenv(key)
}
