package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

const (
	msgMenu              = "menu"
	msgInvalidChoice     = "invalid choice"
	msgInvalidNumber     = "invalid number"
	msgPolynomialPrompt  = "polynomial prompt"
	msgTrigPrompt        = "trigonometric prompt"
	msgUnknownTrig       = "unknown trigonometric kind"
	msgExponentialPrompt = "exponential prompt"
	msgLogPrompt         = "logarithmic prompt"
	msgInvalidBase       = "invalid base"
	msgRangeXPrompt      = "x range prompt"
	msgRangeYPrompt      = "y range prompt"
	msgInvalidRange      = "invalid range"
	msgCleared           = "cleared"
	msgFilePrompt        = "file prompt"
	msgSaved             = "saved"
	msgLoaded            = "loaded"
	msgFailed            = "failed"
	msgNoCurves          = "no curves"
	msgFunctionCurve     = "function curve"
	msgPointsCurve       = "points curve"
)

var supportedLanguages = []language.Tag{language.Russian, language.English}

var messages = map[string][2]string{
	msgMenu: {
		"1. Построить многочлен\n" +
			"2. Построить тригонометрическую функцию\n" +
			"3. Построить показательную функцию\n" +
			"4. Построить логарифмическую функцию\n" +
			"5. Изменить диапазон\n" +
			"6. Очистить графики\n" +
			"7. Сохранить графики\n" +
			"8. Загрузить графики\n" +
			"9. Список графиков\n" +
			"0. Выход\n",
		"1. Plot a polynomial\n" +
			"2. Plot a trigonometric function\n" +
			"3. Plot an exponential function\n" +
			"4. Plot a logarithmic function\n" +
			"5. Change the range\n" +
			"6. Clear the plots\n" +
			"7. Save the plots\n" +
			"8. Load the plots\n" +
			"9. List the plots\n" +
			"0. Exit\n",
	},
	msgInvalidChoice: {
		"Неверный выбор. Пожалуйста, попробуйте снова.\n",
		"Invalid choice. Please try again.\n",
	},
	msgInvalidNumber: {
		"Неверное число: %s\n",
		"Invalid number: %s\n",
	},
	msgPolynomialPrompt: {
		"Введите коэффициенты многочлена (a, b, c): ",
		"Enter the polynomial coefficients (a, b, c): ",
	},
	msgTrigPrompt: {
		"Введите параметры тригонометрической функции (sin|cos, амплитуда, частота, фаза): ",
		"Enter the trigonometric parameters (sin|cos, amplitude, frequency, phase): ",
	},
	msgUnknownTrig: {
		"Неизвестная функция: %s\n",
		"Unknown function: %s\n",
	},
	msgExponentialPrompt: {
		"Введите параметры показательной функции (коэффициент, основание): ",
		"Enter the exponential parameters (coefficient, base): ",
	},
	msgLogPrompt: {
		"Введите параметры логарифмической функции (коэффициент, основание, сдвиг): ",
		"Enter the logarithmic parameters (coefficient, base, shift): ",
	},
	msgInvalidBase: {
		"Основание логарифма должно быть больше 1\n",
		"The logarithm base must be greater than 1\n",
	},
	msgRangeXPrompt: {
		"Введите новый диапазон по оси X (min max): ",
		"Enter the new X range (min max): ",
	},
	msgRangeYPrompt: {
		"Введите новый диапазон по оси Y (min max): ",
		"Enter the new Y range (min max): ",
	},
	msgInvalidRange: {
		"Минимум должен быть меньше максимума\n",
		"The minimum must be less than the maximum\n",
	},
	msgCleared: {
		"Графики очищены\n",
		"Plots cleared\n",
	},
	msgFilePrompt: {
		"Введите имя файла (- для файла по умолчанию): ",
		"Enter the file name (- for the default file): ",
	},
	msgSaved: {
		"Сохранено: %s\n",
		"Saved: %s\n",
	},
	msgLoaded: {
		"Загружено графиков: %d\n",
		"Plots loaded: %d\n",
	},
	msgFailed: {
		"Ошибка: %v\n",
		"Error: %v\n",
	},
	msgNoCurves: {
		"Нет графиков\n",
		"No plots\n",
	},
	msgFunctionCurve: {
		"%d. %s, точек: %d\n",
		"%d. %s, points: %d\n",
	},
	msgPointsCurve: {
		"%d. загруженные точки: %d\n",
		"%d. loaded points: %d\n",
	},
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Russian))

	for key, msgs := range messages {
		for idx, lang := range supportedLanguages {
			_ = b.SetString(lang, key, msgs[idx])
		}
	}

	return b
}

// MatchLanguage picks the closest supported prompt language for the given
// BCP 47 strings, Russian when nothing matches.
func MatchLanguage(langs ...string) language.Tag {
	tag, _ := language.MatchStrings(language.NewMatcher(supportedLanguages), langs...)

	base, _ := tag.Base()

	for _, lang := range supportedLanguages {
		if b, _ := lang.Base(); b == base {
			return lang
		}
	}

	return language.Russian
}
