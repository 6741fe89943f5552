package service

import (
	"github.com/MKhiriev/trademark-relay/internal/adapter"
	"github.com/MKhiriev/trademark-relay/internal/logger"
)

type ClientServices struct {
	RelayService ClientRelayService
}

func NewClientServices(relayAdapter adapter.RelayAdapter, auth ClientAuth, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		RelayService: NewClientRelayService(relayAdapter, auth, logger),
	}
}
