package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Transport names accepted by the server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		flags := root.PersistentFlags()
		for key, flag := range map[string]string{
			KeyHost:           "host",
			KeyPort:           "port",
			KeyTransport:      "transport",
			KeyLogLevel:       "log-level",
			KeyFailSafe:       "fail-safe",
			KeyActionPauseMS:  "action-pause-ms",
			KeyCaptureUtility: "capture-utility-path",
		} {
			if f := flags.Lookup(flag); f != nil {
				_ = viper.BindPFlag(key, f)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyHost, "127.0.0.1")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyFailSafe, true)
	viper.SetDefault(KeyActionPauseMS, 50)
	viper.SetDefault(KeyCaptureUtility, "screencapture")
	viper.SetDefault(KeyCaptureTmpDir, "")
}

// ValidateTransport rejects transport names other than the two the server
// implements.
func ValidateTransport(transport string) error {
	switch transport {
	case TransportStdio, TransportHTTP:
		return nil
	default:
		return fmt.Errorf("unknown transport %q: expected %q or %q", transport, TransportStdio, TransportHTTP)
	}
}

func Host() string           { return viper.GetString(KeyHost) }
func Port() int              { return viper.GetInt(KeyPort) }
func Transport() string      { return viper.GetString(KeyTransport) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }
func FailSafe() bool         { return viper.GetBool(KeyFailSafe) }
func CaptureUtility() string { return viper.GetString(KeyCaptureUtility) }
func CaptureTmpDir() string  { return viper.GetString(KeyCaptureTmpDir) }

// ActionPause returns the delay inserted between backend actions.
func ActionPause() time.Duration {
	return time.Duration(viper.GetInt(KeyActionPauseMS)) * time.Millisecond
}
