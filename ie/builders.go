// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// This file collects fluent builders for the grouped IEs whose field count
// makes positional construction error-prone, plus a few convenience
// constructors for common shapes. Builders never perform I/O; Build()
// only validates the fields the grouped IE itself requires.

// CreateFARBuilder accumulates a CreateFAR's optional fields before Build()
// checks the two mandatory ones (FARID, ApplyAction).
type CreateFARBuilder struct {
	farID                 FARID
	hasFARID               bool
	applyAction            ApplyAction
	hasApplyAction         bool
	forwardingParameters   *ForwardingParameters
	duplicatingParameters  *DuplicatingParameters
}

func NewCreateFARBuilder() *CreateFARBuilder { return &CreateFARBuilder{} }

func (b *CreateFARBuilder) FARID(id FARID) *CreateFARBuilder {
	b.farID = id
	b.hasFARID = true
	return b
}

func (b *CreateFARBuilder) ApplyAction(a ApplyAction) *CreateFARBuilder {
	b.applyAction = a
	b.hasApplyAction = true
	return b
}

func (b *CreateFARBuilder) ForwardingParameters(fp ForwardingParameters) *CreateFARBuilder {
	b.forwardingParameters = &fp
	return b
}

func (b *CreateFARBuilder) DuplicatingParameters(dp DuplicatingParameters) *CreateFARBuilder {
	b.duplicatingParameters = &dp
	return b
}

func (b *CreateFARBuilder) Build() (CreateFAR, error) {
	if !b.hasFARID {
		return CreateFAR{}, NewMissingMandatoryIe(TypeFARID, TypeCreateFAR)
	}
	if !b.hasApplyAction {
		return CreateFAR{}, NewMissingMandatoryIe(TypeApplyAction, TypeCreateFAR)
	}
	return CreateFAR{
		FARID:                 b.farID,
		ApplyAction:           b.applyAction,
		ForwardingParameters:  b.forwardingParameters,
		DuplicatingParameters: b.duplicatingParameters,
	}, nil
}

// UplinkToCore pre-fills the common uplink-forward-to-core-network shape:
// a FAR that forwards (ApplyActionForward) out the core-side interface,
// optionally encapsulating in GTP-U toward the given peer.
func (b *CreateFARBuilder) UplinkToCore(id FARID, ohc *OuterHeaderCreation) *CreateFARBuilder {
	b.FARID(id)
	b.ApplyAction(ApplyActionForward)
	fp := ForwardingParameters{DestinationInterface: DestinationInterfaceCore}
	if ohc != nil {
		fp.OuterHeaderCreation = ohc
	}
	b.ForwardingParameters(fp)
	return b
}

// CreateURRBuilder accumulates a CreateURR's fields before Build() checks
// the three mandatory ones (URRID, MeasurementMethod, ReportingTriggers).
type CreateURRBuilder struct {
	v             CreateURR
	hasURRID      bool
	hasMethod     bool
	hasTriggers   bool
}

func NewCreateURRBuilder() *CreateURRBuilder { return &CreateURRBuilder{} }

func (b *CreateURRBuilder) URRID(id URRID) *CreateURRBuilder {
	b.v.URRID = id
	b.hasURRID = true
	return b
}

func (b *CreateURRBuilder) MeasurementMethod(m MeasurementMethod) *CreateURRBuilder {
	b.v.MeasurementMethod = m
	b.hasMethod = true
	return b
}

func (b *CreateURRBuilder) ReportingTriggers(r ReportingTriggers) *CreateURRBuilder {
	b.v.ReportingTriggers = r
	b.hasTriggers = true
	return b
}

func (b *CreateURRBuilder) VolumeThreshold(v VolumeThreshold) *CreateURRBuilder {
	b.v.VolumeThreshold = &v
	return b
}

func (b *CreateURRBuilder) TimeThreshold(t TimeThreshold) *CreateURRBuilder {
	b.v.TimeThreshold = &t
	return b
}

func (b *CreateURRBuilder) Build() (CreateURR, error) {
	if !b.hasURRID {
		return CreateURR{}, NewMissingMandatoryIe(TypeURRID, TypeCreateURR)
	}
	if !b.hasMethod {
		return CreateURR{}, NewMissingMandatoryIe(TypeMeasurementMethod, TypeCreateURR)
	}
	if !b.hasTriggers {
		return CreateURR{}, NewMissingMandatoryIe(TypeReportingTriggers, TypeCreateURR)
	}
	return b.v, nil
}

// UpdateURRBuilder accumulates an UpdateURR's fields. Unlike CreateURR,
// only URRID is mandatory -- an update may touch as little as one field.
type UpdateURRBuilder struct {
	v        UpdateURR
	hasURRID bool
}

func NewUpdateURRBuilder() *UpdateURRBuilder { return &UpdateURRBuilder{} }

func (b *UpdateURRBuilder) URRID(id URRID) *UpdateURRBuilder {
	b.v.URRID = id
	b.hasURRID = true
	return b
}

func (b *UpdateURRBuilder) MeasurementMethod(m MeasurementMethod) *UpdateURRBuilder {
	b.v.MeasurementMethod = &m
	return b
}

func (b *UpdateURRBuilder) ReportingTriggers(r ReportingTriggers) *UpdateURRBuilder {
	b.v.ReportingTriggers = &r
	return b
}

func (b *UpdateURRBuilder) VolumeThreshold(v VolumeThreshold) *UpdateURRBuilder {
	b.v.VolumeThreshold = &v
	return b
}

func (b *UpdateURRBuilder) TimeThreshold(t TimeThreshold) *UpdateURRBuilder {
	b.v.TimeThreshold = &t
	return b
}

// Build rejects a configuration that sets a volume threshold while the
// measurement method being set in the same update disables volume
// measurement -- the two fields must agree on whether volume is measured.
func (b *UpdateURRBuilder) Build() (UpdateURR, error) {
	if !b.hasURRID {
		return UpdateURR{}, NewMissingMandatoryIe(TypeURRID, TypeUpdateURR)
	}
	if b.v.MeasurementMethod != nil && b.v.VolumeThreshold != nil && !b.v.MeasurementMethod.Has(MeasurementMethodVolume) {
		return UpdateURR{}, NewInvalidValueString("VolumeThreshold", "set",
			"MeasurementMethod.Volume must be set to carry a VolumeThreshold")
	}
	return b.v, nil
}

// NewPFDContentsFlowAndURL constructs the common PFDContents shape of a flow description
// paired with a URL, the two fields most PFD rules actually carry.
func NewPFDContentsFlowAndURL(flowDescription, url string) PFDContents {
	return PFDContents{
		FlowDescription:    flowDescription,
		HasFlowDescription: true,
		URL:                url,
		HasURL:             true,
	}
}
