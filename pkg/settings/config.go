package settings

type Config struct {
	Logger Logger `mapstructure:"logger"`
	Demo   Demo   `mapstructure:"demo"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Demo is the configuration for the arraylist demo command
type Demo struct {
	InitialCapacity int   `mapstructure:"initial_capacity" validate:"gt=0"`
	Values          []int `mapstructure:"values"`
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Demo: Demo{
			InitialCapacity: 10,
			Values:          []int{3, 1, 4, 1, 5, 9, 2, 6, 5},
		},
	}
}
