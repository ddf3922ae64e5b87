package usecase_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/opener/pkg/domain/model"
	"github.com/m-mizutani/opener/pkg/usecase"
)

func TestConfigService(t *testing.T) {
	t.Run("GenerateTemplate returns valid template", func(t *testing.T) {
		service := usecase.NewConfigService()
		template := service.GenerateTemplate()
		gt.NotEqual(t, "", template)
		gt.True(t, strings.Contains(template, "customFolders:"))
		gt.True(t, strings.Contains(template, "folderName:"))
	})

	t.Run("template is loadable and valid", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yml")

		service := usecase.NewConfigService()
		gt.NoError(t, service.SaveTemplate(configPath, false))

		config, err := service.Load(configPath)
		gt.NoError(t, err)
		gt.Equal(t, len(config.CustomFolders), 2)
		gt.Equal(t, config.Shell, "/bin/sh")
		for _, record := range config.CustomFolders {
			gt.True(t, model.ValidateAction(record))
		}
	})

	t.Run("SaveTemplate fails without force when file exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "nested", "config.yml")

		service := usecase.NewConfigService()

		err := service.SaveTemplate(configPath, false)
		gt.NoError(t, err)

		err = service.SaveTemplate(configPath, false)
		gt.Error(t, err)

		err = service.SaveTemplate(configPath, true)
		gt.NoError(t, err)
	})

	t.Run("Load parses YAML records as untyped values", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yml")

		yamlContent := `
disablePresets: true
customFolders:
  - folderName: server
    label: Open in Terminal
    command: open
    args: ["-a", "iTerm.app", "."]
  - folderName: server
    label: Bad args
    command: open
    args: ["-a", 123]
  - just a string
`
		err := os.WriteFile(configPath, []byte(yamlContent), 0600)
		gt.NoError(t, err)

		service := usecase.NewConfigService()
		config, err := service.Load(configPath)
		gt.NoError(t, err)
		gt.True(t, config.DisablePresets)
		gt.Equal(t, len(config.CustomFolders), 3)
		gt.True(t, model.ValidateAction(config.CustomFolders[0]))
		gt.False(t, model.ValidateAction(config.CustomFolders[1]))
		gt.False(t, model.ValidateAction(config.CustomFolders[2]))
	})

	t.Run("Load parses TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		tomlContent := `
shell = "/bin/bash"

[[customFolders]]
folderName = "server"
label = "Open"
command = "open"
args = ["-a", "My App", "."]

[[customFolders]]
folderName = "web"
label = "Broken"
command = "code"
`
		err := os.WriteFile(configPath, []byte(tomlContent), 0600)
		gt.NoError(t, err)

		service := usecase.NewConfigService()
		config, err := service.Load(configPath)
		gt.NoError(t, err)
		gt.Equal(t, config.Shell, "/bin/bash")
		gt.Equal(t, len(config.CustomFolders), 2)

		action, err := model.ParseAction(config.CustomFolders[0])
		gt.NoError(t, err)
		gt.Equal(t, action.Args, []string{"-a", "My App", "."})
		gt.False(t, model.ValidateAction(config.CustomFolders[1]))
	})

	t.Run("Load fails for missing file", func(t *testing.T) {
		service := usecase.NewConfigService()
		_, err := service.Load(filepath.Join(t.TempDir(), "missing.yml"))
		gt.Error(t, err)
	})

	t.Run("LoadFromDirectory with no config file found", func(t *testing.T) {
		tempDir := t.TempDir()
		configService := usecase.NewConfigService()

		config, path, err := configService.LoadFromDirectory(tempDir)
		gt.NoError(t, err)
		gt.V(t, config).NotNil()
		gt.Equal(t, path, "")
		gt.Equal(t, len(config.CustomFolders), 0)
	})

	t.Run("LoadFromDirectory priority yml over yaml over toml", func(t *testing.T) {
		tempDir := t.TempDir()
		configService := &usecase.ConfigService{}

		tomlPath := filepath.Join(tempDir, ".opener.toml")
		gt.NoError(t, os.WriteFile(tomlPath, []byte(`shell = "/bin/zsh"`), 0600))
		gt.Equal(t, configService.FindConfigInDirectory(tempDir), tomlPath)

		yamlPath := filepath.Join(tempDir, ".opener.yaml")
		gt.NoError(t, os.WriteFile(yamlPath, []byte("shell: /bin/bash\n"), 0600))
		gt.Equal(t, configService.FindConfigInDirectory(tempDir), yamlPath)

		ymlPath := filepath.Join(tempDir, ".opener.yml")
		gt.NoError(t, os.WriteFile(ymlPath, []byte("shell: /bin/sh\n"), 0600))

		config, loadedPath, err := configService.LoadFromDirectory(tempDir)
		gt.NoError(t, err)
		gt.Equal(t, loadedPath, ymlPath)
		gt.Equal(t, config.Shell, "/bin/sh")
	})

	t.Run("LoadFromDirectory with invalid yaml content", func(t *testing.T) {
		tempDir := t.TempDir()
		configService := usecase.NewConfigService()

		configPath := filepath.Join(tempDir, ".opener.yml")
		invalidContent := `customFolders:
  - folderName server  # invalid yaml syntax
    label: x
`
		err := os.WriteFile(configPath, []byte(invalidContent), 0600)
		gt.NoError(t, err)

		_, loadedPath, err := configService.LoadFromDirectory(tempDir)
		gt.Error(t, err)
		gt.Equal(t, loadedPath, configPath)
	})
}
