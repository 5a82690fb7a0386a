package redisx

const ns = "seatly:v1"

func ChannelSeatsChanged() string {
	return ns + ":seats:changed"
}
