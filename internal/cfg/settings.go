package cfg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"ytcli/internal/domain/consts"
	"ytcli/internal/domain/errs"
	"ytcli/internal/models"
	"ytcli/internal/parsing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the resolved command line, environment and config file state.
// Keys match the flag names in internal/domain/keys.
type Config struct {
	Output    string `mapstructure:"output"`
	AudioOnly bool   `mapstructure:"audio-only"`
	Quality   string `mapstructure:"quality"`
	FileType  string `mapstructure:"file-type" validate:"omitempty,oneof=mp4 webm mp3 m4a wav"`
	Dir       string `mapstructure:"dir"`

	DateAfter  string `mapstructure:"date-after"`
	DateBefore string `mapstructure:"date-before"`

	PlaylistStart string `mapstructure:"playlist-start" validate:"omitempty,number"`
	PlaylistEnd   string `mapstructure:"playlist-end" validate:"omitempty,number"`
	PlaylistItems string `mapstructure:"playlist-items"`
	IgnoreErrors  bool   `mapstructure:"ignore-errors"`

	Cookies            string `mapstructure:"cookies" validate:"omitempty,file"`
	CookiesFromBrowser string `mapstructure:"cookies-from-browser"`

	YtdlpPath  string        `mapstructure:"ytdlp-path" validate:"required"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"min=0"`
	NoHistory  bool          `mapstructure:"no-history"`
	DBPath     string        `mapstructure:"db-path"`
	DebugLevel int           `mapstructure:"debug-level" validate:"min=0,max=5"`
}

var (
	validate         = validator.New()
	configStructType = reflect.TypeOf(Config{})
)

// LoadConfig unmarshals and validates the viper state.
//
// An unsupported file type is reported as *errs.FormatError so it exits
// like any other format rejection.
func LoadConfig() (*Config, error) {
	c := Config{}
	if err := viper.Unmarshal(&c); err != nil {
		return nil, usageErr("unmarshal config: %w", err)
	}
	c.FileType = strings.ToLower(strings.TrimSpace(c.FileType))

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.StructField() == "FileType" {
					return nil, &errs.FormatError{Field: "file type", Value: c.FileType, Allowed: consts.AllFileTypes}
				}
			}
			return nil, usageErr("invalid configuration: %s", describeValidation(verrs))
		}
		return nil, usageErr("validate config: %w", err)
	}
	return &c, nil
}

// describeValidation renders validator errors with flag names.
func describeValidation(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if f, ok := configStructType.FieldByName(fe.StructField()); ok {
			if tag := f.Tag.Get("mapstructure"); tag != "" {
				field = "--" + tag
			}
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "file":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a readable file", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s %v fails %q", field, fe.Value(), strings.TrimSpace(fe.Tag()+" "+fe.Param())))
		}
	}
	return strings.Join(msgs, "; ")
}

// Request builds the download request for url.
func (c *Config) Request(url string) (models.Request, error) {
	dateAfter, err := parsing.ParseYtdlpDate(c.DateAfter)
	if err != nil {
		return models.Request{}, usageErr("--date-after: %w", err)
	}
	dateBefore, err := parsing.ParseYtdlpDate(c.DateBefore)
	if err != nil {
		return models.Request{}, usageErr("--date-before: %w", err)
	}

	req := models.NewRequest(strings.TrimSpace(url))
	if q := strings.TrimSpace(c.Quality); q != "" {
		req.Quality = q
	}
	req.Output = strings.TrimSpace(c.Output)
	req.AudioOnly = c.AudioOnly
	req.FileType = c.FileType
	if req.Dir, err = parsing.ExpandDir(c.Dir); err != nil {
		return models.Request{}, usageErr("--dir: %w", err)
	}
	req.Playlist = models.Playlist{
		Start: strings.TrimSpace(c.PlaylistStart),
		End:   strings.TrimSpace(c.PlaylistEnd),
		Items: strings.TrimSpace(c.PlaylistItems),
	}
	req.IgnoreErrors = c.IgnoreErrors
	req.DateAfter = dateAfter
	req.DateBefore = dateBefore
	req.Cookies = models.Cookies{
		File:    strings.TrimSpace(c.Cookies),
		Browser: strings.TrimSpace(c.CookiesFromBrowser),
	}
	return req, nil
}
