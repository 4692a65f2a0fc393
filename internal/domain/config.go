package domain

type Config struct {
	Version          string
	ConfigPath       string
	DownloadLocation string                    `yaml:"downloadLocation"`
	NamingTemplate   string                    `yaml:"namingTemplate"`
	CheckInterval    int                       `yaml:"checkInterval"`
	Workers          int                       `yaml:"workers"`
	Format           string                    `yaml:"format"`
	Aria2            bool                      `yaml:"aria2"`
	Aria2RPC         string                    `yaml:"aria2RPC"`
	MonitoredBooks   map[string]*MonitoredBook `yaml:"monitoredBooks"`
	LogPath          string                    `yaml:"logPath"`
	LogLevel         string                    `yaml:"LogLevel"`
	LogMaxSize       int                       `yaml:"logMaxSize"` // in megabytes
	LogMaxBackups    int                       `yaml:"logMaxBackups"`
}

type MonitoredBook struct {
	URL    string `yaml:"url"`
	Format string `yaml:"format"`
}
