package units

func SpeedFrom(distance Length, elapsed Time) Speed {
	return NewSpeed(distance.meters / elapsed.seconds)
}

func DistanceFrom(speed Speed, elapsed Time) Length {
	return NewLength(speed.metersPerSecond * elapsed.seconds)
}

func TravelTime(distance Length, speed Speed) Time {
	return NewTime(distance.meters / speed.metersPerSecond)
}

// AccelerationFrom treats speed as the change in speed over the interval.
func AccelerationFrom(deltaSpeed Speed, elapsed Time) Acceleration {
	return NewAcceleration(deltaSpeed.metersPerSecond / elapsed.seconds)
}

// SpeedAfter returns the speed gained from rest under constant acceleration.
func SpeedAfter(accel Acceleration, elapsed Time) Speed {
	return NewSpeed(accel.metersPerSecondSq * elapsed.seconds)
}
