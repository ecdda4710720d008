package theme

import "github.com/mplthemes/mplthemes/color"

// newGreenGeneric builds the green built-in theme.
func newGreenGeneric() (*Theme, error) {
	defaultRed := color.New("magenta", 231, 28, 87)
	defaultGreen := color.New("bright_green", 41, 186, 116)
	defaultBlue := color.New("true_blue", 41, 94, 126)
	defaultYellow := color.New("yellow", 212, 223, 51)

	return New(Config{
		Name: GreenGeneric,
		Colors: ThemeColors{
			Background1: color.New("white", 255, 255, 255),
			Background2: color.New("off_white", 242, 242, 242),
			Text1:       color.New("dark_gray", 87, 87, 87),
			Text2:       defaultGreen,
			Accent1:     color.New("forest_green", 3, 82, 45),
			Accent2:     color.New("jade_green", 25, 122, 86),
			Accent3:     defaultYellow,
			Accent4:     color.New("mint_green", 62, 173, 146),
			Accent5:     color.New("medium_gray", 110, 111, 115),
			Accent6:     defaultBlue,
		},
		DefaultRed:    defaultRed,
		DefaultGreen:  defaultGreen,
		DefaultBlue:   defaultBlue,
		DefaultYellow: defaultYellow,
		CustomColors: []color.Color{
			color.New("cranberry", 103, 15, 49),
			color.New("dark_yellow", 168, 178, 28),
			color.New("bright_blue", 48, 193, 215),
		},
	})
}
