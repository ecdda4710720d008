package theme

import "github.com/mplthemes/mplthemes/color"

// newBlueGeneric builds the blue built-in theme.
func newBlueGeneric() (*Theme, error) {
	defaultRed := color.New("magenta", 231, 28, 87)
	defaultGreen := color.New("green", 0, 191, 111)
	defaultBlue := color.New("blue", 44, 77, 142)
	defaultYellow := color.New("gold", 250, 188, 21)

	return New(Config{
		Name: BlueGeneric,
		Colors: ThemeColors{
			Background1: color.New("white", 255, 255, 255),
			Background2: color.New("off_white", 242, 242, 242),
			Text1:       color.New("gray", 134, 134, 134),
			Text2:       defaultBlue,
			Accent1:     color.New("turquoise", 0, 172, 236),
			Accent2:     color.New("lime", 206, 220, 0),
			Accent3:     defaultYellow,
			Accent4:     color.New("tan", 197, 183, 134),
			Accent5:     color.New("teal", 0, 163, 173),
			Accent6:     defaultGreen,
		},
		DefaultRed:    defaultRed,
		DefaultGreen:  defaultGreen,
		DefaultBlue:   defaultBlue,
		DefaultYellow: defaultYellow,
		CustomColors:  []color.Color{defaultRed},
	})
}
