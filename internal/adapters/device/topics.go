package device

import "fmt"

// Topics holds the MQTT topics used to talk to one device
type Topics struct {
	AppMessage string
	Location   string
	Display    string
	Locate     string
}

// NewTopics builds the topic set for a device under prefix
func NewTopics(prefix, deviceID string) Topics {
	base := fmt.Sprintf("%s/%s", prefix, deviceID)
	return Topics{
		AppMessage: base + "/appmessage",
		Location:   base + "/location",
		Display:    base + "/display",
		Locate:     base + "/locate",
	}
}

// Transport publishes and subscribes to MQTT topics
type Transport interface {
	Publish(topic string, payload []byte) error
	Subscribe(topic string, handler func(payload []byte)) error
}
