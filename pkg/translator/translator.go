package translator

import (
	"embed"
	"fmt"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the embedded message files when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if cfg.TranslationFolder == "" {
		loadEmbedded(cfg.SupportedLanguages)
		return
	}

	// List files in the translation folder
	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		if _, err := Translator.LoadMessageFile(filepath); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func loadEmbedded(languages []string) {
	if len(languages) == 0 {
		languages = []string{LanguageEn, LanguageFr}
	}

	for _, lang := range languages {
		name := path.Join("translation", lang+".toml")
		if _, err := Translator.LoadMessageFileFS(embedded, name); err != nil {
			zap.L().Warn("failed to load embedded translation", zap.String("lang", lang), zap.Error(err))
		}
	}
}
