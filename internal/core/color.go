package core

// Color represents a foreground color for a screen cell or sprite.
// Terminal hosts map it to ANSI 256-color codes, pixel hosts to RGB.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorLightGray
	ColorPeriwinkle
)

var colorRGB = map[Color][3]uint8{
	ColorDefault:       {230, 230, 230},
	ColorRed:           {205, 49, 49},
	ColorGreen:         {13, 188, 121},
	ColorYellow:        {229, 229, 16},
	ColorBlue:          {36, 114, 200},
	ColorMagenta:       {188, 63, 188},
	ColorCyan:          {17, 168, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {241, 76, 76},
	ColorBrightGreen:   {35, 209, 139},
	ColorBrightYellow:  {245, 245, 67},
	ColorBrightBlue:    {59, 142, 234},
	ColorBrightMagenta: {214, 112, 214},
	ColorBrightCyan:    {41, 184, 219},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorDarkGray:      {51, 51, 51},
	ColorLightGray:     {230, 230, 230},
	ColorPeriwinkle:    {128, 128, 255},
}

// RGB returns the 8-bit red, green and blue channels for pixel hosts.
// Unknown colors fall back to the default.
func (c Color) RGB() (r, g, b uint8) {
	rgb, ok := colorRGB[c]
	if !ok {
		rgb = colorRGB[ColorDefault]
	}
	return rgb[0], rgb[1], rgb[2]
}
