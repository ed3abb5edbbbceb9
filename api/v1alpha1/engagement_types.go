/*
Copyright 2025 The CustomComponents Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// EngagementKind is the kind of the Engagement document.
const EngagementKind = "Engagement"

// EngagementSpec describes a resolved engagement whose salvage is to be generated.
type EngagementSpec struct {
	// Contract holds the contract-level scalars.
	// +kubebuilder:validation:Required
	Contract ContractSpec `json:"contract"`

	// Components is the catalog of component definitions referenced by unit inventories.
	// +optional
	Components []ComponentDefSpec `json:"components,omitempty"`

	// LostUnits are the friendly units taken out during the engagement.
	// +optional
	LostUnits []UnitSpec `json:"lostUnits,omitempty"`

	// EnemyMechs are the enemy mechs fielded in the engagement.
	// +optional
	EnemyMechs []UnitSpec `json:"enemyMechs,omitempty"`

	// EnemyVehicles are the enemy vehicles destroyed in the engagement.
	// +optional
	EnemyVehicles []VehicleSpec `json:"enemyVehicles,omitempty"`
}

// ContractSpec holds the contract-level scalars.
type ContractSpec struct {
	// Name is the display name of the contract.
	// +kubebuilder:validation:MinLength=1
	Name string `json:"name"`

	// Outcome is how the contract ended.
	// +kubebuilder:validation:Enum=Victory;Defeat;Retreat
	Outcome string `json:"outcome"`

	// SalvagePotential is the salvage potential of the contract.
	// +kubebuilder:validation:Minimum=0
	SalvagePotential int `json:"salvagePotential"`

	// PercentageContractSalvage is the negotiated share of the salvage potential (0.0-1.0).
	// +kubebuilder:validation:Pattern=`^\d+(\.\d+)?$`
	// +kubebuilder:default="0.0"
	// +optional
	PercentageContractSalvage string `json:"percentageContractSalvage,omitempty"`

	// Difficulty is the final difficulty of the contract.
	// +kubebuilder:validation:Minimum=0
	// +optional
	Difficulty int `json:"difficulty,omitempty"`
}

// ComponentDefSpec is a component definition.
type ComponentDefSpec struct {
	// ID is the component definition id.
	// +kubebuilder:validation:MinLength=1
	ID string `json:"id"`

	// Type is the component type.
	// +kubebuilder:validation:Enum=Weapon;Upgrade;AmmunitionBox;HeatSink;JumpJet;Other
	Type string `json:"type"`

	// Rarity gates admission to the salvage pool. Defaults to Common.
	// +kubebuilder:validation:Enum=Common;Rare;VeryRare
	// +optional
	Rarity string `json:"rarity,omitempty"`

	// MinDifficulty is the contract difficulty a rare component requires.
	// +optional
	MinDifficulty int `json:"minDifficulty,omitempty"`

	// Critical marks components whose destruction destroys the mech.
	// +optional
	Critical bool `json:"critical,omitempty"`

	// +optional
	Tags []string `json:"tags,omitempty"`

	// Capabilities names the built-in capabilities of the component:
	// "CriticalPart" or "LocationBound".
	// +optional
	Capabilities []string `json:"capabilities,omitempty"`
}

// UnitSpec is a mech that took part in the engagement.
type UnitSpec struct {
	Mech MechSpec `json:"mech"`

	// +optional
	Pilot PilotSpec `json:"pilot,omitempty"`
}

// MechSpec is the post-engagement state of a mech.
type MechSpec struct {
	// +optional
	ID string `json:"id,omitempty"`

	// ChassisID identifies the chassis salvaged parts belong to.
	// +kubebuilder:validation:MinLength=1
	ChassisID string `json:"chassisID"`

	// +optional
	Name string `json:"name,omitempty"`

	// Destroyed is the battle engine's destroyed flag.
	// +optional
	Destroyed bool `json:"destroyed,omitempty"`

	// Locations maps a chassis location (Head, CenterTorso, ... or HD, CT, ...)
	// to its damage level. Missing locations are Functional.
	// +optional
	Locations map[string]string `json:"locations,omitempty"`

	// +optional
	Inventory []ComponentRefSpec `json:"inventory,omitempty"`
}

// ComponentRefSpec is an installed component.
type ComponentRefSpec struct {
	// ComponentDefID references an entry of EngagementSpec.Components.
	ComponentDefID string `json:"componentDefID"`

	// Location is the mount location. Ignored for vehicles.
	// +optional
	Location string `json:"location,omitempty"`

	// DamageLevel defaults to Functional.
	// +kubebuilder:validation:Enum=Functional;Penalized;NonFunctional;Destroyed
	// +optional
	DamageLevel string `json:"damageLevel,omitempty"`
}

// PilotSpec is the state of a mech's pilot.
type PilotSpec struct {
	// +optional
	Ejected bool `json:"ejected,omitempty"`
	// +optional
	Incapacitated bool `json:"incapacitated,omitempty"`
}

// VehicleSpec is an enemy vehicle.
type VehicleSpec struct {
	// +optional
	ID string `json:"id,omitempty"`
	// +kubebuilder:validation:MinLength=1
	ChassisID string `json:"chassisID"`
	// +optional
	Name string `json:"name,omitempty"`
	// +optional
	Inventory []ComponentRefSpec `json:"inventory,omitempty"`
}

// EngagementStatus is the generated salvage of the engagement.
type EngagementStatus struct {
	// Ran is false when salvage generation was rejected.
	Ran bool `json:"ran"`

	// Phase is the last phase salvage generation reached.
	// +optional
	Phase string `json:"phase,omitempty"`

	// FinalSalvageCount is the number of salvage picks.
	// +kubebuilder:validation:Minimum=0
	FinalSalvageCount int32 `json:"finalSalvageCount"`

	// FinalPrioritySalvageCount is the number of priority picks.
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:validation:Maximum=7
	FinalPrioritySalvageCount int32 `json:"finalPrioritySalvageCount"`

	// PotentialSalvage is the pool the player picks from.
	// +optional
	PotentialSalvage []SalvageEntryStatus `json:"potentialSalvage,omitempty"`

	// ForcedSalvage is the consolation salvage of unrecovered friendly mechs.
	// +optional
	ForcedSalvage []SalvageEntryStatus `json:"forcedSalvage,omitempty"`

	// LostMechs lists the ids of friendly mechs that were not recovered.
	// +optional
	LostMechs []string `json:"lostMechs,omitempty"`

	// LastRunTime is when salvage was last generated.
	// +optional
	LastRunTime metav1.Time `json:"lastRunTime,omitempty"`

	// Conditions represent the latest available observations of the Engagement's state
	// +kubebuilder:validation:Optional
	// +patchMergeKey=type
	// +patchStrategy=merge
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

// SalvageEntryStatus is one salvage pool entry.
type SalvageEntryStatus struct {
	// Type is MechPart or Component.
	Type string `json:"type"`

	// DefID is the chassis id of a mech part or the component definition id.
	DefID string `json:"defID"`

	// +optional
	ComponentType string `json:"componentType,omitempty"`

	// +optional
	Rarity string `json:"rarity,omitempty"`

	Tier string `json:"tier"`

	// +kubebuilder:validation:Minimum=1
	Count int32 `json:"count"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=eng
// +kubebuilder:printcolumn:name="Outcome",type=string,JSONPath=".spec.contract.outcome"
// +kubebuilder:printcolumn:name="Salvage",type=integer,JSONPath=".status.finalSalvageCount"
// +kubebuilder:printcolumn:name="Priority",type=integer,JSONPath=".status.finalPrioritySalvageCount"
// +kubebuilder:printcolumn:name="Generated",type=string,JSONPath=".status.conditions[?(@.type=='SalvageGenerated')].status"

// Engagement is the Schema for the engagements API.
// It carries a resolved engagement and the salvage generated from it.
type Engagement struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec EngagementSpec `json:"spec,omitempty"`

	Status EngagementStatus `json:"status,omitempty"`
}

// EngagementList contains a list of Engagement documents.
// +kubebuilder:object:root=true
type EngagementList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []Engagement `json:"items"`
}

// Condition Types for Engagement
const (
	// TypeSalvageGenerated indicates whether salvage generation completed
	TypeSalvageGenerated = "SalvageGenerated"
)

// Condition Reasons for SalvageGenerated
const (
	// ReasonGenerated indicates salvage was generated
	ReasonGenerated = "Generated"
	// ReasonNoSimulation indicates generation was rejected without simulation state
	ReasonNoSimulation = "NoSimulation"
	// ReasonBudgetFailed indicates the salvage budget could not be computed
	ReasonBudgetFailed = "BudgetFailed"
	// ReasonInvalidEngagement indicates the engagement spec could not be converted
	ReasonInvalidEngagement = "InvalidEngagement"
)
