package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"comic99/internal/domain"
	"comic99/internal/files"
	"comic99/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var configTemplate = `# config.yaml

# Download Location
# Needs to be filled out correctly, e.g. "/data/downloads/comics"
#
# Default: ""
#
downloadLocation: ""

# Output format
# "images" keeps the pictures in <book>/<volume>/, "cbz" and "pdf" pack every volume into one file
#
# Default: "images"
#
format: "images"

# Naming Template
# Used to name cbz and pdf archives, variables: {book}, {volume}, {num}
# The default will result something like this: One Piece - One Piece 3集
#
# Default: {book} - {volume}
#
namingTemplate: "{book} - {volume}"

# Number of pictures downloaded in parallel
#
# Default: 10
#
workers: 10

# Hand downloads to aria2 over JSON-RPC instead of downloading them directly
#
# Default: false
#
aria2: false

# aria2 JSON-RPC address
#
# Default: "http://127.0.0.1:6800/jsonrpc"
#
aria2RPC: "http://127.0.0.1:6800/jsonrpc"

# Check interval in minutes
#
# Default: 60
#
checkInterval: 60

# Monitored Books
# Here you can define which books you want to monitor for new volumes
#
monitoredBooks:
  # Custom name you can give the entry to easily distinguish between them
  #
  One Piece:
    # URL of the book on 99manga.com, 99comic.com or 99mh.com
    #
    url: "http://99manga.com/comic/9912/"

    # Output format for this book, falls back to the global format
    #
    format: "cbz"

# comic99 logs file
# If not defined, logs to stdout
# Make sure to use forward slashes and include the filename with extension. e.g. "logs/comic99.log", "C:/comic99/logs/comic99.log"
#
# Optional
#
#logPath: ""

# Log level
#
# Default: "DEBUG"
#
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
#
logLevel: "DEBUG"

# Log Max Size
#
# Default: 50
#
# Max log size in megabytes
#
#logMaxSize: 50

# Log Max Backups
#
# Default: 3
#
# Max amount of old log files
#
#logMaxBackups: 3
`

func (c *AppConfig) writeConfig(configPath string, configFile string) error {
	cfgPath := filepath.Join(configPath, configFile)

	// check if configPath exists, if not create it
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		err := os.MkdirAll(configPath, os.ModePerm)
		if err != nil {
			log.Println(err)
			return err
		}
	}

	// check if config exists, if not create it
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {

		f, err := os.Create(cfgPath)
		if err != nil { // perm 0666
			// handle failed create
			log.Printf("error creating file: %q", err)
			return err
		}
		defer f.Close()

		if _, err = f.WriteString(configTemplate); err != nil {
			log.Printf("error writing contents to file: %v %q", configPath, err)
			return err
		}

		return f.Sync()
	}

	return nil
}

type Config interface {
	UpdateConfig() error
	DynamicReload(log logger.Logger)
}

type AppConfig struct {
	Config *domain.Config
	m      *sync.Mutex
}

func New(configPath string, version string) *AppConfig {
	c := &AppConfig{
		m: new(sync.Mutex),
	}
	c.defaults()
	c.Config = &domain.Config{
		Version:    version,
		ConfigPath: configPath,
	}

	c.load(configPath)
	c.loadFromEnv()

	if c.Config.DownloadLocation == "" {
		log.Fatalf("downloadLocation can't be empty, please provide a valid path to the directory you want your downloads to go to")
	}

	if err := c.validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	return c
}

func (c *AppConfig) validate() error {
	if !files.ValidFormat(c.Config.Format) {
		return errors.Errorf("unknown format %q, expected one of images, cbz, pdf", c.Config.Format)
	}

	for name, book := range c.Config.MonitoredBooks {
		if book == nil || book.URL == "" {
			return errors.Errorf("monitored book %q has no url", name)
		}

		if book.Format != "" && !files.ValidFormat(book.Format) {
			return errors.Errorf("monitored book %q has unknown format %q", name, book.Format)
		}
	}

	if c.Config.Workers <= 0 {
		c.Config.Workers = 10
	}

	return nil
}

func (c *AppConfig) defaults() {
	viper.SetDefault("downloadLocation", "")
	viper.SetDefault("namingTemplate", "{book} - {volume}")
	viper.SetDefault("format", "images")
	viper.SetDefault("workers", 10)
	viper.SetDefault("aria2", false)
	viper.SetDefault("aria2RPC", "http://127.0.0.1:6800/jsonrpc")
	viper.SetDefault("checkInterval", 60)
	viper.SetDefault("monitoredBooks", make(map[string]*domain.MonitoredBook))
	viper.SetDefault("logPath", "")
	viper.SetDefault("logLevel", "DEBUG")
	viper.SetDefault("logMaxSize", 50)
	viper.SetDefault("logMaxBackups", 3)
}

func (c *AppConfig) loadFromEnv() {
	prefix := "COMIC99__"

	envs := os.Environ()
	for _, env := range envs {
		if strings.HasPrefix(env, prefix) {
			envPair := strings.SplitN(env, "=", 2)

			if envPair[1] != "" {
				switch envPair[0] {
				case prefix + "DOWNLOAD_LOCATION":
					c.Config.DownloadLocation = envPair[1]
				case prefix + "NAMING_TEMPLATE":
					c.Config.NamingTemplate = envPair[1]
				case prefix + "FORMAT":
					c.Config.Format = envPair[1]
				case prefix + "WORKERS":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.Workers = int(i)
					}
				case prefix + "ARIA2":
					if b, err := strconv.ParseBool(envPair[1]); err == nil {
						c.Config.Aria2 = b
					}
				case prefix + "ARIA2_RPC":
					c.Config.Aria2RPC = envPair[1]
				case prefix + "CHECK_INTERVAL":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.CheckInterval = int(i)
					}
				case prefix + "LOG_LEVEL":
					c.Config.LogLevel = envPair[1]
				case prefix + "LOG_PATH":
					c.Config.LogPath = envPair[1]
				case prefix + "LOG_MAX_SIZE":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.LogMaxSize = int(i)
					}
				case prefix + "LOG_MAX_BACKUPS":
					if i, _ := strconv.ParseInt(envPair[1], 10, 32); i > 0 {
						c.Config.LogMaxBackups = int(i)
					}
				}
			}
		}
	}
}

func (c *AppConfig) load(configPath string) {
	viper.SetConfigType("yaml")

	if configPath != "" {
		// clean trailing slash from configPath
		configPath = path.Clean(configPath)

		// check if path and file exists
		// if not, create path and file
		if err := c.writeConfig(configPath, "config.yaml"); err != nil {
			log.Printf("write error: %q", err)
		}

		viper.SetConfigFile(path.Join(configPath, "config.yaml"))
	} else {
		viper.SetConfigName("config")

		// Search config in directories
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/comic99")
		viper.AddConfigPath("$HOME/.comic99")
	}

	// read config
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("config read error: %q", err)
	}

	if err := viper.Unmarshal(c.Config); err != nil {
		log.Fatalf("Could not unmarshal config file: %v: err %q", viper.ConfigFileUsed(), err)
	}
}

func (c *AppConfig) DynamicReload(log logger.Logger) {
	viper.WatchConfig()

	viper.OnConfigChange(func(_ fsnotify.Event) {
		c.m.Lock()
		defer c.m.Unlock()

		logLevel := viper.GetString("logLevel")
		c.Config.LogLevel = logLevel
		log.SetLogLevel(c.Config.LogLevel)

		logPath := viper.GetString("logPath")
		c.Config.LogPath = logPath

		log.Debug().Msg("config file reloaded!")
	})
}

func (c *AppConfig) UpdateConfig() error {
	filePath := path.Join(c.Config.ConfigPath, "config.yaml")

	f, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("could not read config filePath: %s: %w", filePath, err)
	}

	lines := strings.Split(string(f), "\n")
	lines = c.processLines(lines)

	output := strings.Join(lines, "\n")
	if err := os.WriteFile(filePath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("could not write config file: %s: %w", filePath, err)
	}

	return nil
}

func (c *AppConfig) processLines(lines []string) []string {
	// keep track of not found values to append at bottom
	var (
		foundLineLogLevel = false
		foundLineLogPath  = false
	)

	for i, line := range lines {
		if !foundLineLogLevel && strings.Contains(line, "logLevel:") {
			lines[i] = fmt.Sprintf(`logLevel: "%s"`, c.Config.LogLevel)
			foundLineLogLevel = true
		}
		if !foundLineLogPath && strings.Contains(line, "logPath:") {
			if c.Config.LogPath == "" {
				lines[i] = `#logPath: ""`
			} else {
				lines[i] = fmt.Sprintf(`logPath: "%s"`, c.Config.LogPath)
			}
			foundLineLogPath = true
		}
	}

	if !foundLineLogLevel {
		lines = append(lines, "# Log level")
		lines = append(lines, "#")
		lines = append(lines, `# Default: "DEBUG"`)
		lines = append(lines, "#")
		lines = append(lines, `# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"`)
		lines = append(lines, "#")
		lines = append(lines, fmt.Sprintf(`logLevel: "%s"`, c.Config.LogLevel))
	}

	if !foundLineLogPath {
		lines = append(lines, "# Log Path")
		lines = append(lines, "#")
		lines = append(lines, "# Optional")
		lines = append(lines, "#")
		if c.Config.LogPath == "" {
			lines = append(lines, `#logPath: ""`)
		} else {
			lines = append(lines, fmt.Sprintf(`logPath: "%s"`, c.Config.LogPath))
		}
	}

	return lines
}
