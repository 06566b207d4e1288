package models

// Packet is an inbound APRS text message as handed to a plugin by the host.
type Packet struct {
	FromCall    string
	ToCall      string
	MessageText string
}

// NullMessage is the reply of a plugin that has nothing to send back.
const NullMessage = ""
