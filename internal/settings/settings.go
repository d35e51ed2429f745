package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	KeyPlayer   = "player"
	KeyGravity  = "gravity"
	KeyFPS      = "fps"
	KeyGhost    = "ghost"
	KeyScoresDB = "scores_db"
)

const (
	MaxPlayerLength = 16
	MinGravity      = 50 * time.Millisecond
	MaxGravity      = 10 * time.Second
	MaxFPS          = 240
)

var ErrUnknownKey = errors.New("unknown config key")

// Config is the typed view of the settings file
type Config struct {
	Player   string        `mapstructure:"player"`
	Gravity  time.Duration `mapstructure:"gravity"`
	FPS      int           `mapstructure:"fps"`
	Ghost    bool          `mapstructure:"ghost"`
	ScoresDB string        `mapstructure:"scores_db"`
}

type Settings struct {
	v   *viper.Viper
	dir string
}

// validators normalize a raw value into what is persisted
var validators = map[string]func(string) (interface{}, error){
	KeyPlayer:   validatePlayer,
	KeyGravity:  validateGravity,
	KeyFPS:      validateFPS,
	KeyGhost:    validateGhost,
	KeyScoresDB: validateScoresDB,
}

func DefaultDir() string {
	return configdir.LocalConfig("tetris")
}

// ReadSettings loads settings.json from configPath, or from the user config
// directory when configPath is empty. The file is created on first use.
func ReadSettings(configPath string) (*Settings, error) {
	if len(configPath) == 0 {
		configPath = DefaultDir()
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("json")
	v.AddConfigPath(configPath)
	v.SetDefault(KeyPlayer, "")
	v.SetDefault(KeyGravity, "500ms")
	v.SetDefault(KeyFPS, 60)
	v.SetDefault(KeyGhost, true)
	v.SetDefault(KeyScoresDB, filepath.Join(configPath, "scores.db"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := v.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, fmt.Errorf("could not read %s: %w", filepath.Join(configPath, "settings.json"), err)
		}
	}
	return &Settings{v: v, dir: configPath}, nil
}

// Dir returns the directory holding settings.json
func (s *Settings) Dir() string {
	return s.dir
}

// Config decodes the settings. Values edited by hand in settings.json go
// through the same validators as Set; an unset player is allowed.
func (s *Settings) Config() (Config, error) {
	for _, key := range Keys() {
		raw := s.v.GetString(key)
		if key == KeyPlayer && raw == "" {
			continue
		}
		if _, err := validators[key](raw); err != nil {
			return Config{}, fmt.Errorf("invalid %s in %s: %w", key, filepath.Join(s.dir, "settings.json"), err)
		}
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(s.v.AllSettings()); err != nil {
		return Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return config, nil
}

// Keys returns the known keys in order
func Keys() []string {
	keys := maps.Keys(validators)
	slices.Sort(keys)
	return keys
}

// Get returns the value of key as text
func (s *Settings) Get(key string) (string, error) {
	if _, ok := validators[key]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return s.v.GetString(key), nil
}

// All returns every known key with its value
func (s *Settings) All() map[string]string {
	all := make(map[string]string, len(validators))
	for key := range validators {
		all[key] = s.v.GetString(key)
	}
	return all
}

// Set validates and persists a value
func (s *Settings) Set(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	normalized, err := validate(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	s.v.Set(key, normalized)
	if err := s.v.WriteConfig(); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}
	return nil
}

func (s *Settings) SetPlayer(name string) error {
	return s.Set(KeyPlayer, name)
}

func (s *Settings) GetPlayer() string {
	return s.v.GetString(KeyPlayer)
}

// ValidatePlayer checks a player name before it is saved
func ValidatePlayer(name string) error {
	_, err := validatePlayer(name)
	return err
}

func validatePlayer(value string) (interface{}, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.New("player name is empty")
	}
	if utf8.RuneCountInString(value) > MaxPlayerLength {
		return nil, fmt.Errorf("player name is longer than %d characters", MaxPlayerLength)
	}
	return value, nil
}

func validateGravity(value string) (interface{}, error) {
	gravity, err := time.ParseDuration(value)
	if err != nil {
		return nil, err
	}
	if gravity < MinGravity || gravity > MaxGravity {
		return nil, fmt.Errorf("must be between %s and %s", MinGravity, MaxGravity)
	}
	return gravity.String(), nil
}

func validateFPS(value string) (interface{}, error) {
	fps, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	if fps < 1 || fps > MaxFPS {
		return nil, fmt.Errorf("must be between 1 and %d", MaxFPS)
	}
	return fps, nil
}

func validateGhost(value string) (interface{}, error) {
	return strconv.ParseBool(value)
}

func validateScoresDB(value string) (interface{}, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.New("path is empty")
	}
	return filepath.Abs(value)
}
