package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5,
		},
		Replay: ReplayConfig{
			Goroutines: 8,
			MaxTurns:   300,
			RecordsDir: "experiments/records",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}
