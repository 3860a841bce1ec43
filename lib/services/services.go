// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"fmt"
	"reflect"
)

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry manages the services of a node. Services are started
// in registration order and stopped in reverse order.
type ServiceRegistry struct {
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type
	started      int
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the registry. A service of
// a type already registered is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll starts all registered services. If a service fails to start,
// the services already started are stopped and the error is returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting services: %v", s.serviceTypes)
	for _, typ := range s.serviceTypes {
		s.logger.Debugf("Starting service %s", typ)
		err := s.services[typ].Start()
		if err != nil {
			s.StopAll()
			return fmt.Errorf("starting service %s: %w", typ, err)
		}
		s.started++
	}
	s.logger.Debugf("All %d services started", s.started)
	return nil
}

// StopAll stops the started services in reverse order.
func (s *ServiceRegistry) StopAll() {
	for i := s.started - 1; i >= 0; i-- {
		typ := s.serviceTypes[i]
		s.logger.Debugf("Stopping service %s", typ)
		err := s.services[typ].Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
		}
	}
	s.started = 0
}

// Get retrieves the registered service of the same type as srvc,
// which must be a pointer.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}

	if service, ok := s.services[reflect.TypeOf(srvc)]; ok {
		return service
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}
