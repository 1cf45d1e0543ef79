package models

// Rovers lists the Mars rovers with photo archives on the Mars Rover Photos
// API. Lookup data only - endpoints do not validate against it.
var Rovers = []string{"Curiosity", "Opportunity", "Spirit"}

// Camera describes one rover camera.
type Camera struct {
	Code     string
	FullName string
	Rovers   []string
}

// Cameras maps camera codes to their display names and compatible rovers.
var Cameras = map[string]Camera{
	"FHAZ":    {Code: "FHAZ", FullName: "Front Hazard Avoidance Camera", Rovers: []string{"Curiosity", "Opportunity", "Spirit"}},
	"RHAZ":    {Code: "RHAZ", FullName: "Rear Hazard Avoidance Camera", Rovers: []string{"Curiosity", "Opportunity", "Spirit"}},
	"MAST":    {Code: "MAST", FullName: "Mast Camera", Rovers: []string{"Curiosity"}},
	"CHEMCAM": {Code: "CHEMCAM", FullName: "Chemistry and Camera Complex", Rovers: []string{"Curiosity"}},
	"MAHLI":   {Code: "MAHLI", FullName: "Mars Hand Lens Imager", Rovers: []string{"Curiosity"}},
	"MARDI":   {Code: "MARDI", FullName: "Mars Descent Imager", Rovers: []string{"Curiosity"}},
	"NAVCAM":  {Code: "NAVCAM", FullName: "Navigation Camera", Rovers: []string{"Curiosity", "Opportunity", "Spirit"}},
	"PANCAM":  {Code: "PANCAM", FullName: "Panoramic Camera", Rovers: []string{"Opportunity", "Spirit"}},
	"MINITES": {Code: "MINITES", FullName: "Miniature Thermal Emission Spectrometer (Mini-TES)", Rovers: []string{"Opportunity", "Spirit"}},
}

// CameraFromCode returns the camera for a code, reporting whether it exists.
func CameraFromCode(code string) (Camera, bool) {
	c, ok := Cameras[code]
	return c, ok
}

// SupportsRover reports whether the camera is mounted on the given rover.
func (c Camera) SupportsRover(rover string) bool {
	for _, r := range c.Rovers {
		if r == rover {
			return true
		}
	}
	return false
}

// ValidRover reports whether name is a known rover.
func ValidRover(name string) bool {
	for _, r := range Rovers {
		if r == name {
			return true
		}
	}
	return false
}
