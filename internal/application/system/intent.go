package system

// Intents is one frame of player input, independent of the input device.
// JumpPressed and FirePressed are edges: true only on the frame the button
// went down.
type Intents struct {
	MoveLeft    bool
	MoveRight   bool
	JumpPressed bool
	FirePressed bool
}

