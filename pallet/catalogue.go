// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pallet - the entity kinds of the roaming and mining
// networks and how they relate
package pallet

import (
	"math"

	"github.com/datahighway/registryd/registry"
)

// AssociationEntry - a child kind that may be assigned to a parent kind
type AssociationEntry struct {
	Child  string `json:"child"`
	Parent string `json:"parent"`
}

// SlotEntry - a configuration slot on a kind
//
// Parent names the association (Kind/Parent) used for composite keys
// and parent owner checks
type SlotEntry struct {
	Kind       string
	Parent     string
	Definition registry.SlotDefinition
}

// Catalogue - everything needed to assemble a runtime
type Catalogue struct {
	Kinds        []registry.Kind
	Associations []AssociationEntry
	Slots        []SlotEntry
}

// shorthand for schema construction
func number(name string, n uint64) registry.Field {
	return registry.Field{Name: name, Kind: registry.Number, Default: registry.Literal(registry.NumberValue(n))}
}

func bytes(name string) registry.Field {
	return registry.Field{Name: name, Kind: registry.Bytes, Default: registry.Literal(registry.TextValue(""))}
}

func flag(name string, f bool) registry.Field {
	return registry.Field{Name: name, Kind: registry.Flag, Default: registry.Literal(registry.FlagValue(f))}
}

func block(name string, offset uint64) registry.Field {
	return registry.Field{Name: name, Kind: registry.Number, Default: registry.CurrentBlock(offset)}
}

func copied(name string, slot string, field string, fallback registry.Value) registry.Field {
	return registry.Field{Name: name, Kind: fallback.Kind, Default: registry.FromSlot(slot, field, fallback)}
}

func kind(name string, title string, marketplace bool) registry.Kind {
	return registry.Kind{
		Name:        name,
		Title:       title,
		Maximum:     math.MaxUint64,
		Marketplace: marketplace,
	}
}

func sample(name string, title string) registry.Kind {
	k := kind(name, title, false)
	k.Maximum = math.MaxUint32
	return k
}

func slot(kind string, name string, fields ...registry.Field) SlotEntry {
	return SlotEntry{
		Kind: kind,
		Definition: registry.SlotDefinition{
			Name:   name,
			Schema: registry.Schema(fields),
		},
	}
}

// composite slot keyed by (parent id, id)
func composite(kind string, parent string, name string, fields ...registry.Field) SlotEntry {
	s := slot(kind, name, fields...)
	s.Parent = parent
	s.Definition.Composite = true
	return s
}

// DataHighway - the roaming and mining catalogue
func DataHighway() Catalogue {
	return Catalogue{
		Kinds: []registry.Kind{
			kind("roaming_operators", "Roaming Operators", true),
			kind("roaming_networks", "Roaming Networks", true),
			kind("roaming_network_servers", "Roaming Network Servers", true),
			kind("roaming_organizations", "Roaming Organizations", true),
			kind("roaming_devices", "Roaming Devices", true),
			kind("roaming_routing_profiles", "Roaming Routing Profiles", false),
			kind("roaming_service_profiles", "Roaming Service Profiles", false),
			kind("roaming_device_profiles", "Roaming Device Profiles", false),
			kind("roaming_network_profiles", "Roaming Network Profiles", false),
			kind("roaming_sessions", "Roaming Sessions", false),
			kind("roaming_accounting_policies", "Roaming Accounting Policies", false),
			kind("roaming_agreement_policies", "Roaming Agreement Policies", false),
			kind("roaming_billing_policies", "Roaming Billing Policies", false),
			kind("roaming_charging_policies", "Roaming Charging Policies", false),
			kind("roaming_packet_bundles", "Roaming Packet Bundles", true),
			kind("mining_config_token", "Mining Token Configuration", false),
			kind("mining_config_hardware", "Mining Hardware Configuration", false),
			kind("mining_rates_token", "Mining Token Rates", false),
			kind("mining_rates_hardware", "Mining Hardware Rates", false),
			sample("mining_sampling_token", "Mining Token Samples"),
			sample("mining_sampling_hardware", "Mining Hardware Samples"),
			sample("mining_eligibility_token", "Mining Token Eligibility"),
			sample("mining_claims_token", "Mining Token Claims"),
			sample("mining_execution_token", "Mining Token Execution"),
			kind("exchange_rates", "Exchange Rates", false),
		},

		Associations: []AssociationEntry{
			{"roaming_networks", "roaming_operators"},
			{"roaming_network_servers", "roaming_networks"},
			{"roaming_network_servers", "roaming_operators"},
			{"roaming_organizations", "roaming_network_servers"},
			{"roaming_devices", "roaming_network_servers"},
			{"roaming_devices", "roaming_organizations"},
			{"roaming_routing_profiles", "roaming_devices"},
			{"roaming_service_profiles", "roaming_network_servers"},
			{"roaming_device_profiles", "roaming_devices"},
			{"roaming_network_profiles", "roaming_networks"},
			{"roaming_network_profiles", "roaming_operators"},
			{"roaming_sessions", "roaming_devices"},
			{"roaming_accounting_policies", "roaming_networks"},
			{"roaming_agreement_policies", "roaming_networks"},
			{"roaming_agreement_policies", "roaming_accounting_policies"},
			{"roaming_billing_policies", "roaming_networks"},
			{"roaming_billing_policies", "roaming_operators"},
			{"roaming_charging_policies", "roaming_networks"},
			{"roaming_charging_policies", "roaming_operators"},
			{"roaming_packet_bundles", "roaming_operators"},
			{"roaming_packet_bundles", "roaming_sessions"},
			{"mining_sampling_token", "mining_config_token"},
			{"mining_sampling_hardware", "mining_config_hardware"},
			{"mining_eligibility_token", "mining_config_token"},
			{"mining_claims_token", "mining_config_token"},
			{"mining_execution_token", "mining_config_token"},
		},

		Slots: []SlotEntry{
			slot("roaming_routing_profiles", "app_server",
				bytes("app_server"),
			),
			slot("roaming_service_profiles", "uplink_rate",
				number("uplink_rate", 0),
			),
			slot("roaming_service_profiles", "downlink_rate",
				number("downlink_rate", 0),
			),
			{
				Kind:   "roaming_device_profiles",
				Parent: "roaming_devices",
				Definition: registry.SlotDefinition{
					Name: "config",
					Schema: registry.Schema{
						bytes("devaddr"),
						bytes("deveui"),
						bytes("joineui"),
						bytes("vendorid"),
					},
					Authorization: registry.OwnerAndParentOwner,
				},
			},
			slot("roaming_network_profiles", "device_access",
				flag("device_access_allowed", false),
			),
			slot("roaming_sessions", "join_request",
				number("network_server_id", 0),
				block("join_requested_at_block", 0),
			),
			slot("roaming_sessions", "join_accept",
				number("accept_expiry", 0),
				block("accepted_at_block", 0),
			),
			slot("roaming_accounting_policies", "config",
				bytes("policy_type"),
				number("subscription_fee", 1),
				number("uplink_fee_factor", 1),
				number("downlink_fee_factor", 1),
			),
			slot("roaming_agreement_policies", "config",
				bytes("policy_activation_type"),
				number("policy_expiry_block", 0),
			),
			slot("roaming_billing_policies", "config",
				number("policy_next_billing_at", 0),
				number("policy_frequency_in_days", 0),
			),
			slot("roaming_charging_policies", "config",
				number("policy_next_charging_at", 0),
				number("policy_delay_after_billing_in_days", 0),
			),
			slot("roaming_packet_bundles", "receiver",
				flag("received_at_home", false),
				number("received_packets_count", 0),
				number("received_packets_ok_count", 0),
				number("received_started_at", 0),
				number("received_ended_at", 0),
				bytes("external_data_storage_hash"),
			),

			slot("mining_config_token", "cooldown_config",
				bytes("token_type"),
				number("token_lock_min_amount", 10),
				number("token_lock_min_blocks", 7),
			),
			slot("mining_config_token", "token_config",
				copied("token_type", "cooldown_config", "token_type", registry.TextValue("")),
				copied("token_lock_amount", "cooldown_config", "token_lock_min_amount", registry.NumberValue(10)),
				block("token_lock_start_block", 0),
				copied("token_lock_interval_blocks", "cooldown_config", "token_lock_min_blocks", registry.NumberValue(7)),
			),
			slot("mining_config_hardware", "hardware_config",
				flag("hardware_secure", false),
				bytes("hardware_type"),
				number("hardware_id", 3),
				number("hardware_dev_eui", 0),
				number("hardware_lock_start_block", 0),
				number("hardware_lock_interval_blocks", 0),
			),
			slot("mining_rates_token", "rates_config",
				number("token_token_mxc", 1),
				number("token_token_iota", 1),
				number("token_token_dot", 1),
				number("token_max_token", 1),
				number("token_max_loyalty", 1),
			),
			slot("mining_rates_hardware", "rates_config",
				number("hardware_hardware_secure", 1),
				number("hardware_hardware_insecure", 1),
				number("hardware_max_hardware", 1),
				number("hardware_category_1_max_token_bonus_per_gateway", 1000000),
				number("hardware_category_2_max_token_bonus_per_gateway", 500000),
				number("hardware_category_3_max_token_bonus_per_gateway", 250000),
			),
			composite("mining_sampling_token", "mining_config_token", "sampling_config",
				number("token_sample_block", 1),
				number("token_sample_locked_amount", 1),
			),
			composite("mining_sampling_hardware", "mining_config_hardware", "sampling_config",
				number("hardware_sample_block", 1),
				number("hardware_sample_hardware_online", 1),
			),
			composite("mining_eligibility_token", "mining_config_token", "eligibility_result",
				number("token_calculated_eligibility", 1),
				number("token_locked_percentage", 1),
			),
			composite("mining_claims_token", "mining_config_token", "claims_result",
				number("token_claim_amount", 1),
				block("token_claim_block_redeemed", 0),
			),
			composite("mining_execution_token", "mining_config_token", "execution_result",
				block("token_execution_started_block", 0),
				block("token_execution_ended_block", 1),
			),

			slot("exchange_rates", "config",
				number("hbtc_rate", 200000),
				number("dot_rate", 100),
				number("iota_rate", 5),
				number("fil_rate", 200),
				number("decimals_after_point", 2),
			),
		},
	}
}
