package field

// Pointer is the most recent pointer position relative to the viewport centre.
type Pointer struct {
	X, Y float64
}

// Orientation is the rotation state of the cloud. The pointer-follow pair is
// smoothed toward a target every tick; Drift only ever grows.
type Orientation struct {
	FollowX float64 // pitch, around the horizontal axis
	FollowY float64 // yaw, around the vertical axis
	Drift   float64 // ambient yaw
}

// Pitch is the rotation around the horizontal axis.
func (o Orientation) Pitch() float64 {
	return o.FollowX
}

// Yaw is the rotation around the vertical axis.
func (o Orientation) Yaw() float64 {
	return o.FollowY + o.Drift
}

// Step moves each follow angle by smoothing of its remaining distance to the
// target and adds drift to the ambient yaw.
func (o *Orientation) Step(targetPitch, targetYaw, smoothing, drift float64) {
	o.FollowY += smoothing * (targetYaw - o.FollowY)
	o.FollowX += smoothing * (targetPitch - o.FollowX)
	o.Drift += drift
}
