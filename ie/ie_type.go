// Copyright 2020 hhorai. All rights reserved.
// Use of this source code is governed by a MIT license that can be found
// in the LICENSE file.

package ie

// Information Element type codes, 3GPP TS 29.244 table 8.1.2-1. Only the
// subset this package provides a typed codec for is named here; any other
// type value decodes fine as a generic *Ie, it just has no typed wrapper.
const (
	TypeCreatePDR                Type = 1
	TypePDI                      Type = 2
	TypeCreateFAR                Type = 3
	TypeForwardingParameters     Type = 4
	TypeDuplicatingParameters    Type = 5
	TypeCreateURR                Type = 6
	TypeCreateQER                Type = 7
	TypeCreatedPDR               Type = 8
	TypeUpdatePDR                Type = 9
	TypeUpdateFAR                Type = 10
	TypeUpdateForwardingParams   Type = 11
	TypeUpdateURR                Type = 13
	TypeUpdateQER                Type = 14
	TypeRemovePDR                Type = 15
	TypeRemoveFAR                Type = 16
	TypeRemoveURR                Type = 17
	TypeRemoveQER                Type = 18
	TypeCause                    Type = 19
	TypeSourceInterface          Type = 20
	TypeFTEID                    Type = 21
	TypeNetworkInstance          Type = 22
	TypeSDFFilter                Type = 23
	TypeApplicationID            Type = 24
	TypeGateStatus               Type = 25
	TypeMBR                      Type = 26
	TypeGBR                      Type = 27
	TypePrecedence               Type = 29
	TypeTransportLevelMarking    Type = 30
	TypeVolumeThreshold          Type = 31
	TypeTimeThreshold            Type = 32
	TypeMonitoringTime           Type = 33
	TypeSubsequentVolumeThresh   Type = 34
	TypeSubsequentTimeThreshold  Type = 35
	TypeInactivityDetectionTime  Type = 36
	TypeReportingTriggers        Type = 37
	TypeReportType               Type = 39
	TypeOffendingIE              Type = 40
	TypeDestinationInterface     Type = 42
	TypeUPFunctionFeatures       Type = 43
	TypeApplyAction              Type = 44
	TypePFCPSMReqFlags           Type = 49
	TypePFCPSRReqFlags           Type = 50
	TypeSequenceNumber           Type = 52
	TypePDRID                    Type = 56
	TypeFSEID                    Type = 57
	TypeApplicationIDsPFDs       Type = 58
	TypePFDContext               Type = 59
	TypeNodeID                   Type = 60
	TypePFDContents              Type = 61
	TypeMeasurementMethod        Type = 62
	TypeUsageReportTrigger       Type = 63
	TypeFQCSID                   Type = 65
	TypeVolumeMeasurement        Type = 66
	TypeDurationMeasurement      Type = 67
	TypeTimeOfFirstPacket        Type = 69
	TypeTimeOfLastPacket         Type = 70
	TypeQuotaHoldingTime         Type = 71
	TypeDroppedDLTrafficThresh   Type = 72
	TypeVolumeQuota              Type = 73
	TypeTimeQuota                Type = 74
	TypeStartTime                Type = 75
	TypeEndTime                  Type = 76
	TypeURRID                    Type = 81
	TypeLinkedURRID              Type = 82
	TypeDownlinkDataReport       Type = 83
	TypeOuterHeaderCreation      Type = 84
	TypeCreateBAR                Type = 85
	TypeUpdateBARWithinSessionModification Type = 86
	TypeRemoveBAR                Type = 87
	TypeBARID                    Type = 88
	TypeCPFunctionFeatures       Type = 89
	TypeOuterHeaderRemoval       Type = 95
	TypeRecoveryTimeStamp        Type = 96
	TypeErrorIndicationReport    Type = 99
	TypeMeasurementInformation   Type = 100
	TypeNodeReportType           Type = 101
	TypePathFailureReport        Type = 102
	TypeRemoteGTPUPeer           Type = 103
	TypeURSEQN                   Type = 104
	TypeFARID                    Type = 108
	TypeQERID                    Type = 109
	TypeOCIFlags                 Type = 110
	TypeGracefulReleasePeriod    Type = 112
	TypePDNType                  Type = 113
	TypeFailedRuleID             Type = 115
	TypeMultiplier               Type = 119
	TypeAggregatedURRID          Type = 120
	TypeSubsequentVolumeQuota    Type = 121
	TypeSubsequentTimeQuota      Type = 122
	TypeRQI                      Type = 123
	TypeQFI                      Type = 124
	TypeQueryURRReference        Type = 125
	TypeAdditionalUsageReports   Type = 126
	TypeMACAddressesDetected     Type = 144
	TypeMACAddressesRemoved      Type = 145
	TypeEthernetInactivityTimer  Type = 146
	TypeTraceInformation         Type = 152
	TypeFramedRoute              Type = 153
	TypeFramedRouting            Type = 154
	TypeEventTimeStamp           Type = 155
	TypeAveragingWindow          Type = 156
	TypePagingPolicyIndicator    Type = 158
	TypeThreeGPPInterfaceType    Type = 161
	TypeCreateTrafficEndpoint    Type = 127
	TypeActivationTime           Type = 163
	TypeDeactivationTime         Type = 164
	TypeCreateMAR                Type = 165
	TypeRemoveMAR                Type = 168
	TypeUpdateMAR                Type = 169
	TypeMARID                    Type = 170
	TypeSteeringFunctionality    Type = 171
	TypeWeight                   Type = 173
	TypePriority                 Type = 174
	TypeSMFSetID                 Type = 180
	TypeQuotaValidityTime        Type = 181
	TypeNumberOfReports          Type = 182
	TypeRequestedQoSMonitoring   Type = 189
	TypePacketDelayThresholds    Type = 191
	TypeMinimumWaitTime          Type = 192
	TypeMinimumPacketDelay       Type = 241
	TypeMaximumPacketDelay       Type = 242
	TypeTimeOffsetThreshold      Type = 213
	TypeTimeOffsetMeasurement    Type = 215
	TypeRemoveSRR                Type = 217
	TypeCreateSRR                Type = 218
	TypeUpdateSRR                Type = 219
	TypeSessionReport            Type = 220
	TypeSRRID                    Type = 221
	TypeAccessAvailAcCtrlInfo    Type = 222
	TypeAccessAvailabilityReport Type = 224
	TypeAccessAvailabilityInfo   Type = 225
	TypeMediaTransportProtocol   Type = 231
	TypeRTPPayloadFormat         Type = 232
	TypeRTPHeaderExtensionID     Type = 233
	TypeRTPPayloadType           Type = 234
	TypeTransportMode            Type = 235
	TypeUeLevelMeasurementsConf  Type = 236
	TypeDscpToPpiMappingInfo     Type = 237
	TypeN6JitterMeasurement      Type = 238
	TypeCumulativeRateRatioMeas  Type = 239
	TypeMbsSessionID             Type = 240
	TypePeerUpRestartReport      Type = 253
	TypeAccessType               Type = 260
	TypeUsageReportSMR           Type = 78
	TypeUsageReportSDR           Type = 79
	TypeUsageReportSRR           Type = 80
)

var typeNames = map[Type]string{
	TypeCreatePDR:                "CreatePDR",
	TypePDI:                      "PDI",
	TypeCreateFAR:                "CreateFAR",
	TypeForwardingParameters:     "ForwardingParameters",
	TypeDuplicatingParameters:    "DuplicatingParameters",
	TypeCreateURR:                "CreateURR",
	TypeCreateQER:                "CreateQER",
	TypeCreatedPDR:               "CreatedPDR",
	TypeUpdatePDR:                "UpdatePDR",
	TypeUpdateFAR:                "UpdateFAR",
	TypeUpdateForwardingParams:   "UpdateForwardingParameters",
	TypeUpdateURR:                "UpdateURR",
	TypeUpdateQER:                "UpdateQER",
	TypeRemovePDR:                "RemovePDR",
	TypeRemoveFAR:                "RemoveFAR",
	TypeRemoveURR:                "RemoveURR",
	TypeRemoveQER:                "RemoveQER",
	TypeCause:                    "Cause",
	TypeSourceInterface:          "SourceInterface",
	TypeFTEID:                    "FTEID",
	TypeNetworkInstance:          "NetworkInstance",
	TypeSDFFilter:                "SDFFilter",
	TypeApplicationID:            "ApplicationID",
	TypeGateStatus:               "GateStatus",
	TypeMBR:                      "MBR",
	TypeGBR:                      "GBR",
	TypePrecedence:               "Precedence",
	TypeTransportLevelMarking:    "TransportLevelMarking",
	TypeVolumeThreshold:          "VolumeThreshold",
	TypeTimeThreshold:            "TimeThreshold",
	TypeMonitoringTime:           "MonitoringTime",
	TypeSubsequentVolumeThresh:   "SubsequentVolumeThreshold",
	TypeSubsequentTimeThreshold:  "SubsequentTimeThreshold",
	TypeInactivityDetectionTime:  "InactivityDetectionTime",
	TypeReportingTriggers:        "ReportingTriggers",
	TypeReportType:               "ReportType",
	TypeOffendingIE:              "OffendingIE",
	TypeDestinationInterface:     "DestinationInterface",
	TypeUPFunctionFeatures:       "UPFunctionFeatures",
	TypeApplyAction:              "ApplyAction",
	TypePFCPSMReqFlags:           "PFCPSMReqFlags",
	TypePFCPSRReqFlags:           "PFCPSRReqFlags",
	TypeSequenceNumber:           "SequenceNumber",
	TypePDRID:                    "PDRID",
	TypeFSEID:                    "FSEID",
	TypeApplicationIDsPFDs:       "ApplicationIDsPFDs",
	TypePFDContext:               "PFDContext",
	TypeNodeID:                   "NodeID",
	TypePFDContents:              "PFDContents",
	TypeMeasurementMethod:        "MeasurementMethod",
	TypeUsageReportTrigger:       "UsageReportTrigger",
	TypeFQCSID:                   "FQCSID",
	TypeVolumeMeasurement:        "VolumeMeasurement",
	TypeDurationMeasurement:      "DurationMeasurement",
	TypeTimeOfFirstPacket:        "TimeOfFirstPacket",
	TypeTimeOfLastPacket:         "TimeOfLastPacket",
	TypeQuotaHoldingTime:         "QuotaHoldingTime",
	TypeDroppedDLTrafficThresh:   "DroppedDLTrafficThreshold",
	TypeVolumeQuota:              "VolumeQuota",
	TypeTimeQuota:                "TimeQuota",
	TypeStartTime:                "StartTime",
	TypeEndTime:                  "EndTime",
	TypeURRID:                    "URRID",
	TypeLinkedURRID:              "LinkedURRID",
	TypeDownlinkDataReport:       "DownlinkDataReport",
	TypeOuterHeaderCreation:      "OuterHeaderCreation",
	TypeCreateBAR:                "CreateBAR",
	TypeUpdateBARWithinSessionModification: "UpdateBARWithinSessionModificationRequest",
	TypeRemoveBAR:                "RemoveBAR",
	TypeBARID:                    "BARID",
	TypeCPFunctionFeatures:       "CPFunctionFeatures",
	TypeOuterHeaderRemoval:       "OuterHeaderRemoval",
	TypeRecoveryTimeStamp:        "RecoveryTimeStamp",
	TypeErrorIndicationReport:    "ErrorIndicationReport",
	TypeMeasurementInformation:   "MeasurementInformation",
	TypeNodeReportType:           "NodeReportType",
	TypePathFailureReport:        "PathFailureReport",
	TypeRemoteGTPUPeer:           "RemoteGTPUPeer",
	TypeURSEQN:                   "URSEQN",
	TypeFARID:                    "FARID",
	TypeQERID:                    "QERID",
	TypeOCIFlags:                 "OCIFlags",
	TypeGracefulReleasePeriod:    "GracefulReleasePeriod",
	TypePDNType:                  "PDNType",
	TypeFailedRuleID:             "FailedRuleID",
	TypeMultiplier:               "Multiplier",
	TypeAggregatedURRID:          "AggregatedURRID",
	TypeSubsequentVolumeQuota:    "SubsequentVolumeQuota",
	TypeSubsequentTimeQuota:      "SubsequentTimeQuota",
	TypeRQI:                      "RQI",
	TypeQFI:                      "QFI",
	TypeQueryURRReference:        "QueryURRReference",
	TypeAdditionalUsageReports:   "AdditionalUsageReportsInformation",
	TypeMACAddressesDetected:     "MACAddressesDetected",
	TypeMACAddressesRemoved:      "MACAddressesRemoved",
	TypeEthernetInactivityTimer:  "EthernetInactivityTimer",
	TypeTraceInformation:         "TraceInformation",
	TypeFramedRoute:              "FramedRoute",
	TypeFramedRouting:            "FramedRouting",
	TypeEventTimeStamp:           "EventTimeStamp",
	TypeAveragingWindow:          "AveragingWindow",
	TypePagingPolicyIndicator:    "PagingPolicyIndicator",
	TypeThreeGPPInterfaceType:    "ThreeGPPInterfaceType",
	TypeCreateTrafficEndpoint:    "CreateTrafficEndpoint",
	TypeActivationTime:          "ActivationTime",
	TypeDeactivationTime:        "DeactivationTime",
	TypeCreateMAR:                "CreateMAR",
	TypeRemoveMAR:                "RemoveMAR",
	TypeUpdateMAR:                "UpdateMAR",
	TypeMARID:                    "MARID",
	TypeSteeringFunctionality:    "SteeringFunctionality",
	TypeWeight:                   "Weight",
	TypePriority:                 "Priority",
	TypeSMFSetID:                 "SMFSetID",
	TypeQuotaValidityTime:        "QuotaValidityTime",
	TypeNumberOfReports:          "NumberOfReports",
	TypeRequestedQoSMonitoring:   "RequestedQoSMonitoring",
	TypePacketDelayThresholds:    "PacketDelayThresholds",
	TypeMinimumWaitTime:          "MinimumWaitTime",
	TypeMinimumPacketDelay:       "MinimumPacketDelay",
	TypeMaximumPacketDelay:       "MaximumPacketDelay",
	TypeTimeOffsetThreshold:      "TimeOffsetThreshold",
	TypeTimeOffsetMeasurement:    "TimeOffsetMeasurement",
	TypeRemoveSRR:                "RemoveSRR",
	TypeCreateSRR:                "CreateSRR",
	TypeUpdateSRR:                "UpdateSRR",
	TypeSessionReport:            "SessionReport",
	TypeSRRID:                    "SRRID",
	TypeAccessAvailAcCtrlInfo:    "AccessAvailabilityControlInformation",
	TypeAccessAvailabilityReport: "AccessAvailabilityReport",
	TypeAccessAvailabilityInfo:   "AccessAvailabilityInformation",
	TypeMediaTransportProtocol:   "MediaTransportProtocol",
	TypeRTPPayloadFormat:         "RTPPayloadFormat",
	TypeRTPHeaderExtensionID:     "RTPHeaderExtensionID",
	TypeRTPPayloadType:           "RTPPayloadType",
	TypeTransportMode:            "TransportMode",
	TypeUeLevelMeasurementsConf:  "UELevelMeasurementsConfiguration",
	TypeDscpToPpiMappingInfo:     "DSCPToPPIMappingInformation",
	TypeN6JitterMeasurement:      "N6JitterMeasurement",
	TypeCumulativeRateRatioMeas:  "CumulativeRateRatioMeasurement",
	TypeMbsSessionID:             "MBSSessionID",
	TypePeerUpRestartReport:      "PeerUpRestartReport",
	TypeAccessType:               "AccessType",
	TypeUsageReportSMR:           "UsageReportSMR",
	TypeUsageReportSDR:           "UsageReportSDR",
	TypeUsageReportSRR:           "UsageReportSRR",
}
