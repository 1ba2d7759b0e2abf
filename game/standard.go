package game

// StandardRules returns the classic 5x5 two-robot layout.
func StandardRules() Rules {
	return Rules{
		Size:           5,
		Steps:          60,
		Battery:        20,
		Packages:       2,
		ChargeStations: 2,
		Queue:          8,
	}
}
