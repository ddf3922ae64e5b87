package usecase

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opener/pkg/domain"
	"github.com/m-mizutani/opener/pkg/domain/interfaces"
	"github.com/m-mizutani/opener/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// configFileNames are searched in order inside a target folder
var configFileNames = []string{".opener.yml", ".opener.yaml", ".opener.toml"}

type configService struct {
	configDir string
}

// NewConfigService creates a new ConfigService instance
func NewConfigService() interfaces.ConfigService {
	homeDir, _ := os.UserHomeDir()
	return &configService{
		configDir: filepath.Join(homeDir, ".config", "opener"),
	}
}

func (c *configService) GetDefaultPath() string {
	return filepath.Join(c.configDir, "config.yml")
}

// Load reads a YAML or TOML configuration file, chosen by extension
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is given by the user
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config", goerr.V("path", path))
	}

	var config model.Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML config", goerr.V("path", path))
		}
	}

	return &config, nil
}

// LoadDefault loads the user config, or an empty config when it doesn't exist
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &model.Config{}, nil
	}
	return c.Load(path)
}

// LoadFromDirectory loads the first config file found in dir. It returns the
// path it loaded (also on parse error), or "" with an empty config.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return &model.Config{}, "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func (c *configService) GenerateTemplate() string {
	return `# opener configuration
#
# Preset commands (opener.openXcode, opener.openAndroidStudio,
# opener.openCurrentWindow, opener.openNewWindow) are always available
# unless disabled.
disablePresets: false

# Interpreter used to run command lines
shell: /bin/sh

# Custom actions are registered as opener.custom.<index> in the order of
# the valid entries below. Arguments containing spaces or shell special
# characters are quoted automatically.
customFolders:
  - folderName: server
    label: "Open in Terminal"
    command: open
    args: ["-a", "iTerm.app", "."]
  - folderName: web
    label: "Open in IntelliJ IDEA"
    command: open
    args: ["-a", "IntelliJ IDEA", "."]
`
}

func (c *configService) SaveTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return goerr.Wrap(domain.ErrConfiguration, "config file already exists, use --force to overwrite", goerr.V("path", path))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	if err := os.WriteFile(path, []byte(c.GenerateTemplate()), 0600); err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	return nil
}
