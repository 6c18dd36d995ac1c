package config

const (
	KeyHost           = "host"
	KeyPort           = "port"
	KeyTransport      = "transport"
	KeyLogLevel       = "log_level"
	KeyFailSafe       = "fail_safe"
	KeyActionPauseMS  = "action_pause_ms"
	KeyCaptureUtility = "capture_utility_path"
	KeyCaptureTmpDir  = "capture_tmp_dir"
)
