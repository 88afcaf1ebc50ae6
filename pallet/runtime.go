// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package pallet

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/datahighway/registryd/fault"
	"github.com/datahighway/registryd/registry"
)

// Runtime - the assembled registries, associations and slots
type Runtime struct {
	log          *logger.L
	kinds        []registry.Kind
	registries   map[string]*registry.Registry
	associations map[string]*registry.Association
	legacy       bool
}

// NewRuntime - build every registry of a catalogue on one environment
//
// legacy selects the historic association behaviour for all graphs
func NewRuntime(env registry.Environment, catalogue Catalogue, legacy bool) (*Runtime, error) {
	log := logger.New("runtime")

	rt := &Runtime{
		log:          log,
		kinds:        make([]registry.Kind, 0, len(catalogue.Kinds)),
		registries:   make(map[string]*registry.Registry),
		associations: make(map[string]*registry.Association),
		legacy:       legacy,
	}

	for _, k := range catalogue.Kinds {
		if _, ok := rt.registries[k.Name]; ok {
			log.Errorf("duplicate kind: %q", k.Name)
			return nil, fault.ErrInvalidKind
		}
		r, err := registry.New(logger.New(k.Name), env, k)
		if nil != err {
			log.Errorf("kind: %q error: %s", k.Name, err)
			return nil, err
		}
		rt.registries[k.Name] = r
		rt.kinds = append(rt.kinds, k)
	}

	for _, a := range catalogue.Associations {
		child, ok := rt.registries[a.Child]
		if !ok {
			log.Errorf("association child: %q is not a kind", a.Child)
			return nil, fault.ErrInvalidKind
		}
		parent, ok := rt.registries[a.Parent]
		if !ok {
			log.Errorf("association parent: %q is not a kind", a.Parent)
			return nil, fault.ErrInvalidKind
		}
		name := registry.AssociationName(a.Child, a.Parent)
		if _, ok := rt.associations[name]; ok {
			log.Errorf("duplicate association: %q", name)
			return nil, fault.ErrAlreadyInitialised
		}
		association, err := registry.NewAssociation(logger.New("association"), child, parent, legacy)
		if nil != err {
			return nil, err
		}
		rt.associations[name] = association
	}

	for _, s := range catalogue.Slots {
		r, ok := rt.registries[s.Kind]
		if !ok {
			log.Errorf("slot: %q on unknown kind: %q", s.Definition.Name, s.Kind)
			return nil, fault.ErrInvalidKind
		}

		var association *registry.Association
		if "" != s.Parent {
			association, ok = rt.associations[registry.AssociationName(s.Kind, s.Parent)]
			if !ok {
				log.Errorf("slot: %q needs association: %s/%s", s.Definition.Name, s.Kind, s.Parent)
				return nil, fault.ErrAssociationNotFound
			}
		}

		_, err := r.NewSlot(logger.New("slot"), s.Definition, association)
		if nil != err {
			log.Errorf("slot: %s.%s error: %s", s.Kind, s.Definition.Name, err)
			return nil, err
		}
	}

	log.Infof("kinds: %d  associations: %d  slots: %d  legacy: %t",
		len(rt.registries), len(rt.associations), len(catalogue.Slots), legacy)

	return rt, nil
}

// Kinds - all kinds in catalogue order
func (rt *Runtime) Kinds() []registry.Kind {
	return rt.kinds
}

// Legacy - true if associations use the historic behaviour
func (rt *Runtime) Legacy() bool {
	return rt.legacy
}

// Registry - the registry of a kind
func (rt *Runtime) Registry(kind string) (*registry.Registry, error) {
	r, ok := rt.registries[kind]
	if !ok {
		return nil, fault.ErrInvalidKind
	}
	return r, nil
}

// Association - the graph relating a child kind to a parent kind
func (rt *Runtime) Association(child string, parent string) (*registry.Association, error) {
	a, ok := rt.associations[registry.AssociationName(child, parent)]
	if !ok {
		return nil, fault.ErrAssociationNotFound
	}
	return a, nil
}

// Associations - names of all graphs, sorted
func (rt *Runtime) Associations() []string {
	names := make([]string, 0, len(rt.associations))
	for name := range rt.associations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Slot - a configuration slot of a kind
func (rt *Runtime) Slot(kind string, name string) (*registry.Slot, error) {
	r, err := rt.Registry(kind)
	if nil != err {
		return nil, err
	}
	s, ok := r.Slot(name)
	if !ok {
		return nil, fault.ErrInvalidSlot
	}
	return s, nil
}
