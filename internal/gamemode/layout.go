package gamemode

import "image"

// Logical screen
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Scenery placement shared by every frontend
const (
	TreeW = 150
	TreeH = 240
	TreeY = ScreenHeight - 110 - TreeH/2 - 10

	DogW = 200
	DogH = 170
	DogX = LeftTreeX + TreeW + 18
	DogY = ScreenHeight - DogH

	LeftTreeX  = 55
	RightTreeX = ScreenWidth - 55 - TreeW
)

// Menu button geometry
const (
	buttonW     = 240
	buttonH     = 60
	buttonTop   = 200
	buttonPitch = 80
)

// buttonRect is the hit box of the i-th difficulty button.
func buttonRect(i int) image.Rectangle {
	x := ScreenWidth/2 - buttonW/2
	y := buttonTop + i*buttonPitch
	return image.Rect(x, y, x+buttonW, y+buttonH)
}
