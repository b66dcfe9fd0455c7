package api

import (
	"reflect"
	"strings"

	"github.com/LambdaTest/ghnotify/pkg/utils"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	jsonTagName   = "json"
	emptyTagName  = "-"
	subString     = 2
	repoSlugTag   = "repo_slug"
	repoSlugTrans = "{0} must be a repository in owner/name form"
)

// configureValidator configure the struct validator
func configureValidator(validate *validator.Validate) error {
	eng := en.New()
	uni := ut.New(eng, eng)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return err
	}
	if err := validate.RegisterValidation(repoSlugTag, func(fl validator.FieldLevel) bool {
		return utils.IsValidRepoSlug(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := validate.RegisterTranslation(repoSlugTag, trans,
		func(ut ut.Translator) error {
			return ut.Add(repoSlugTag, repoSlugTrans, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(repoSlugTag, fe.Field())
			return t
		}); err != nil {
		return err
	}
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(jsonTagName), ",", subString)[0]
		if name == emptyTagName {
			return fld.Name
		}
		return name
	})
	return nil
}
