package overlay

import "image/color"

var backing = color.Alpha{A: 0x60}
