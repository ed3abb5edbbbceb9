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

// Deepcopy functions for the v1alpha1 types. This file is maintained by hand;
// update it whenever a type in engagement_types.go gains a reference field.

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	runtime "k8s.io/apimachinery/pkg/runtime"
)

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *ComponentDefSpec) DeepCopyInto(out *ComponentDefSpec) {
	*out = *in
	if in.Tags != nil {
		in, out := &in.Tags, &out.Tags
		*out = make([]string, len(*in))
		copy(*out, *in)
	}
	if in.Capabilities != nil {
		in, out := &in.Capabilities, &out.Capabilities
		*out = make([]string, len(*in))
		copy(*out, *in)
	}
}

// DeepCopy copies the receiver into a new ComponentDefSpec.
func (in *ComponentDefSpec) DeepCopy() *ComponentDefSpec {
	if in == nil {
		return nil
	}
	out := new(ComponentDefSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *ComponentRefSpec) DeepCopyInto(out *ComponentRefSpec) {
	*out = *in
}

// DeepCopy copies the receiver into a new ComponentRefSpec.
func (in *ComponentRefSpec) DeepCopy() *ComponentRefSpec {
	if in == nil {
		return nil
	}
	out := new(ComponentRefSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *ContractSpec) DeepCopyInto(out *ContractSpec) {
	*out = *in
}

// DeepCopy copies the receiver into a new ContractSpec.
func (in *ContractSpec) DeepCopy() *ContractSpec {
	if in == nil {
		return nil
	}
	out := new(ContractSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *Engagement) DeepCopyInto(out *Engagement) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	in.Spec.DeepCopyInto(&out.Spec)
	in.Status.DeepCopyInto(&out.Status)
}

// DeepCopy copies the receiver into a new Engagement.
func (in *Engagement) DeepCopy() *Engagement {
	if in == nil {
		return nil
	}
	out := new(Engagement)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject copies the receiver into a new runtime.Object.
func (in *Engagement) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *EngagementList) DeepCopyInto(out *EngagementList) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ListMeta.DeepCopyInto(&out.ListMeta)
	if in.Items != nil {
		in, out := &in.Items, &out.Items
		*out = make([]Engagement, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy copies the receiver into a new EngagementList.
func (in *EngagementList) DeepCopy() *EngagementList {
	if in == nil {
		return nil
	}
	out := new(EngagementList)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyObject copies the receiver into a new runtime.Object.
func (in *EngagementList) DeepCopyObject() runtime.Object {
	if c := in.DeepCopy(); c != nil {
		return c
	}
	return nil
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *EngagementSpec) DeepCopyInto(out *EngagementSpec) {
	*out = *in
	out.Contract = in.Contract
	if in.Components != nil {
		in, out := &in.Components, &out.Components
		*out = make([]ComponentDefSpec, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
	if in.LostUnits != nil {
		in, out := &in.LostUnits, &out.LostUnits
		*out = make([]UnitSpec, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
	if in.EnemyMechs != nil {
		in, out := &in.EnemyMechs, &out.EnemyMechs
		*out = make([]UnitSpec, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
	if in.EnemyVehicles != nil {
		in, out := &in.EnemyVehicles, &out.EnemyVehicles
		*out = make([]VehicleSpec, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy copies the receiver into a new EngagementSpec.
func (in *EngagementSpec) DeepCopy() *EngagementSpec {
	if in == nil {
		return nil
	}
	out := new(EngagementSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *EngagementStatus) DeepCopyInto(out *EngagementStatus) {
	*out = *in
	if in.PotentialSalvage != nil {
		in, out := &in.PotentialSalvage, &out.PotentialSalvage
		*out = make([]SalvageEntryStatus, len(*in))
		copy(*out, *in)
	}
	if in.ForcedSalvage != nil {
		in, out := &in.ForcedSalvage, &out.ForcedSalvage
		*out = make([]SalvageEntryStatus, len(*in))
		copy(*out, *in)
	}
	if in.LostMechs != nil {
		in, out := &in.LostMechs, &out.LostMechs
		*out = make([]string, len(*in))
		copy(*out, *in)
	}
	in.LastRunTime.DeepCopyInto(&out.LastRunTime)
	if in.Conditions != nil {
		in, out := &in.Conditions, &out.Conditions
		*out = make([]metav1.Condition, len(*in))
		for i := range *in {
			(*in)[i].DeepCopyInto(&(*out)[i])
		}
	}
}

// DeepCopy copies the receiver into a new EngagementStatus.
func (in *EngagementStatus) DeepCopy() *EngagementStatus {
	if in == nil {
		return nil
	}
	out := new(EngagementStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *MechSpec) DeepCopyInto(out *MechSpec) {
	*out = *in
	if in.Locations != nil {
		in, out := &in.Locations, &out.Locations
		*out = make(map[string]string, len(*in))
		for key, val := range *in {
			(*out)[key] = val
		}
	}
	if in.Inventory != nil {
		in, out := &in.Inventory, &out.Inventory
		*out = make([]ComponentRefSpec, len(*in))
		copy(*out, *in)
	}
}

// DeepCopy copies the receiver into a new MechSpec.
func (in *MechSpec) DeepCopy() *MechSpec {
	if in == nil {
		return nil
	}
	out := new(MechSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *PilotSpec) DeepCopyInto(out *PilotSpec) {
	*out = *in
}

// DeepCopy copies the receiver into a new PilotSpec.
func (in *PilotSpec) DeepCopy() *PilotSpec {
	if in == nil {
		return nil
	}
	out := new(PilotSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *SalvageEntryStatus) DeepCopyInto(out *SalvageEntryStatus) {
	*out = *in
}

// DeepCopy copies the receiver into a new SalvageEntryStatus.
func (in *SalvageEntryStatus) DeepCopy() *SalvageEntryStatus {
	if in == nil {
		return nil
	}
	out := new(SalvageEntryStatus)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *UnitSpec) DeepCopyInto(out *UnitSpec) {
	*out = *in
	in.Mech.DeepCopyInto(&out.Mech)
	out.Pilot = in.Pilot
}

// DeepCopy copies the receiver into a new UnitSpec.
func (in *UnitSpec) DeepCopy() *UnitSpec {
	if in == nil {
		return nil
	}
	out := new(UnitSpec)
	in.DeepCopyInto(out)
	return out
}

// DeepCopyInto copies the receiver into out. in must be non-nil.
func (in *VehicleSpec) DeepCopyInto(out *VehicleSpec) {
	*out = *in
	if in.Inventory != nil {
		in, out := &in.Inventory, &out.Inventory
		*out = make([]ComponentRefSpec, len(*in))
		copy(*out, *in)
	}
}

// DeepCopy copies the receiver into a new VehicleSpec.
func (in *VehicleSpec) DeepCopy() *VehicleSpec {
	if in == nil {
		return nil
	}
	out := new(VehicleSpec)
	in.DeepCopyInto(out)
	return out
}
