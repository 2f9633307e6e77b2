package ews

import (
	"strings"
	"unicode"
)

// ResponseClass is the status of one response message.
type ResponseClass string

const (
	ResponseClassSuccess ResponseClass = "Success"
	ResponseClassWarning ResponseClass = "Warning"
	ResponseClassError   ResponseClass = "Error"
)

// ResponseCode identifies the reason for a warning or error. Its String form
// is the wire token.
type ResponseCode int

// ResponseCodeUnrecognized stands for any token missing from the table, such
// as codes added to the service after this package was written.
const ResponseCodeUnrecognized ResponseCode = 0

const (
	NoError ResponseCode = iota + 1
	ErrorAccessDenied
	ErrorAccessModeSpecified
	ErrorAccountDisabled
	ErrorAddDelegatesFailed
	ErrorAddressSpaceNotFound
	ErrorADOperation
	ErrorADSessionFilter
	ErrorADUnavailable
	ErrorAffectedTaskOccurrencesRequired
	ErrorArchiveFolderPathCreation
	ErrorArchiveMailboxNotEnabled
	ErrorAttachmentNestLevelLimitExceeded
	ErrorAttachmentSizeLimitExceeded
	ErrorAutoDiscoverFailed
	ErrorAvailabilityConfigNotFound
	ErrorBatchProcessingStopped
	ErrorCalendarCannotMoveOrCopyOccurrence
	ErrorCalendarCannotUpdateDeletedItem
	ErrorCalendarCannotUseIDForOccurrenceID
	ErrorCalendarCannotUseIDForRecurringMasterID
	ErrorCalendarDurationIsTooLong
	ErrorCalendarEndDateIsEarlierThanStartDate
	ErrorCalendarFolderIsInvalidForCalendarView
	ErrorCalendarInvalidAttributeValue
	ErrorCalendarInvalidDayForTimeChangePattern
	ErrorCalendarInvalidDayForWeeklyRecurrence
	ErrorCalendarInvalidPropertyState
	ErrorCalendarInvalidRecurrence
	ErrorCalendarInvalidTimeZone
	ErrorCalendarIsCancelledForAccept
	ErrorCalendarIsCancelledForDecline
	ErrorCalendarIsCancelledForRemove
	ErrorCalendarIsCancelledForTentative
	ErrorCalendarIsDelegatedForAccept
	ErrorCalendarIsDelegatedForDecline
	ErrorCalendarIsDelegatedForRemove
	ErrorCalendarIsDelegatedForTentative
	ErrorCalendarIsNotOrganizer
	ErrorCalendarIsOrganizerForAccept
	ErrorCalendarIsOrganizerForDecline
	ErrorCalendarIsOrganizerForRemove
	ErrorCalendarIsOrganizerForTentative
	ErrorCalendarMeetingRequestIsOutOfDate
	ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange
	ErrorCalendarOccurrenceIsDeletedFromRecurrence
	ErrorCalendarOutOfRange
	ErrorCalendarViewRangeTooBig
	ErrorCallerIsInvalidADAccount
	ErrorCannotCreateCalendarItemInNonCalendarFolder
	ErrorCannotCreateContactInNonContactFolder
	ErrorCannotCreatePostItemInNonMailFolder
	ErrorCannotCreateTaskInNonTaskFolder
	ErrorCannotDeleteObject
	ErrorCannotDeleteTaskOccurrence
	ErrorCannotEmptyFolder
	ErrorCannotOpenFileAttachment
	ErrorCannotSetCalendarPermissionOnNonCalendarFolder
	ErrorCannotSetNonCalendarPermissionOnCalendarFolder
	ErrorCannotSetPermissionUnknownEntries
	ErrorCannotUseFolderIDForItemID
	ErrorCannotUseItemIDForFolderID
	ErrorChangeKeyRequired
	ErrorChangeKeyRequiredForWriteOperations
	ErrorConnectionFailed
	ErrorContentConversionFailed
	ErrorCorruptData
	ErrorCreateItemAccessDenied
	ErrorCreateManagedFolderPartialCompletion
	ErrorCreateSubfolderAccessDenied
	ErrorCrossMailboxMoveCopy
	ErrorCrossSiteRequest
	ErrorDataSizeLimitExceeded
	ErrorDataSourceOperation
	ErrorDelegateAlreadyExists
	ErrorDelegateCannotAddOwner
	ErrorDelegateMissingConfiguration
	ErrorDelegateNoUser
	ErrorDelegateValidationFailed
	ErrorDeleteDistinguishedFolder
	ErrorDeleteItemsFailed
	ErrorDistinguishedUserNotSupported
	ErrorDistributionListMemberNotExist
	ErrorDuplicateInputFolderNames
	ErrorDuplicateSOAPHeader
	ErrorDuplicateUserIdsSpecified
	ErrorEmailAddressMismatch
	ErrorEventNotFound
	ErrorExceededConnectionCount
	ErrorExceededFindCountLimit
	ErrorExceededSubscriptionCount
	ErrorExpiredSubscription
	ErrorFolderCorrupt
	ErrorFolderExists
	ErrorFolderNotFound
	ErrorFolderPropertRequestFailed
	ErrorFolderSave
	ErrorFolderSaveFailed
	ErrorFolderSavePropertyError
	ErrorFreeBusyDLLimitReached
	ErrorFreeBusyGenerationFailed
	ErrorGetServerSecurityDescriptorFailed
	ErrorImpersonateUserDenied
	ErrorImpersonationDenied
	ErrorImpersonationFailed
	ErrorIncorrectSchemaVersion
	ErrorIncorrectUpdatePropertyCount
	ErrorIndividualMailboxLimitReached
	ErrorInsufficientResources
	ErrorInternalServerError
	ErrorInternalServerTransientError
	ErrorInvalidAccessLevel
	ErrorInvalidArgument
	ErrorInvalidAttachmentID
	ErrorInvalidAttachmentSubfilter
	ErrorInvalidAttachmentSubfilterTextFilter
	ErrorInvalidAuthorizationContext
	ErrorInvalidChangeKey
	ErrorInvalidClientSecurityContext
	ErrorInvalidCompleteDate
	ErrorInvalidContactEmailAddress
	ErrorInvalidContactEmailIndex
	ErrorInvalidCrossForestCredentials
	ErrorInvalidDelegatePermission
	ErrorInvalidDelegateUserID
	ErrorInvalidExcludesRestriction
	ErrorInvalidExpressionTypeForSubFilter
	ErrorInvalidExtendedProperty
	ErrorInvalidExtendedPropertyValue
	ErrorInvalidFolderID
	ErrorInvalidFolderTypeForOperation
	ErrorInvalidFractionalPagingParameters
	ErrorInvalidFreeBusyViewType
	ErrorInvalidID
	ErrorInvalidIDEmpty
	ErrorInvalidIDMalformed
	ErrorInvalidIDMalformedEwsLegacyIDFormat
	ErrorInvalidIDMonikerTooLong
	ErrorInvalidIDNotAnItemAttachmentID
	ErrorInvalidIDReturnedByResolveNames
	ErrorInvalidIDStoreObjectIDTooLong
	ErrorInvalidIDTooManyAttachmentLevels
	ErrorInvalidIDXml
	ErrorInvalidIndexedPagingParameters
	ErrorInvalidInternetHeaderChildNodes
	ErrorInvalidItemForOperationAcceptItem
	ErrorInvalidItemForOperationCancelItem
	ErrorInvalidItemForOperationCreateItem
	ErrorInvalidItemForOperationCreateItemAttachment
	ErrorInvalidItemForOperationDeclineItem
	ErrorInvalidItemForOperationExpandDL
	ErrorInvalidItemForOperationRemoveItem
	ErrorInvalidItemForOperationSendItem
	ErrorInvalidItemForOperationTentative
	ErrorInvalidManagedFolderProperty
	ErrorInvalidManagedFolderQuota
	ErrorInvalidManagedFolderSize
	ErrorInvalidMergedFreeBusyInterval
	ErrorInvalidNameForNameResolution
	ErrorInvalidNetworkServiceContext
	ErrorInvalidOofParameter
	ErrorInvalidOperation
	ErrorInvalidPagingMaxRows
	ErrorInvalidParentFolder
	ErrorInvalidPercentCompleteValue
	ErrorInvalidPropertyAppend
	ErrorInvalidPropertyDelete
	ErrorInvalidPropertyForExists
	ErrorInvalidPropertyForOperation
	ErrorInvalidPropertyRequest
	ErrorInvalidPropertySet
	ErrorInvalidPropertyUpdateSentMessage
	ErrorInvalidProxySecurityContext
	ErrorInvalidPullSubscriptionID
	ErrorInvalidPushSubscriptionUrl
	ErrorInvalidRecipients
	ErrorInvalidRecipientSubfilter
	ErrorInvalidRecipientSubfilterComparison
	ErrorInvalidRecipientSubfilterOrder
	ErrorInvalidRecipientSubfilterTextFilter
	ErrorInvalidReferenceItem
	ErrorInvalidRequest
	ErrorInvalidRestriction
	ErrorInvalidRoutingType
	ErrorInvalidScheduledOofDuration
	ErrorInvalidSecurityDescriptor
	ErrorInvalidSendItemSaveSettings
	ErrorInvalidSerializedAccessToken
	ErrorInvalidServerVersion
	ErrorInvalidSid
	ErrorInvalidSmtpAddress
	ErrorInvalidSubfilterType
	ErrorInvalidSubfilterTypeNotAttendeeType
	ErrorInvalidSubfilterTypeNotRecipientType
	ErrorInvalidSubscription
	ErrorInvalidSyncStateData
	ErrorInvalidTimeInterval
	ErrorInvalidUserInfo
	ErrorInvalidUserOofSettings
	ErrorInvalidUserPrincipalName
	ErrorInvalidUserSid
	ErrorInvalidValueForProperty
	ErrorInvalidWatermark
	ErrorIrresolvableConflict
	ErrorItemCorrupt
	ErrorItemNotFound
	ErrorItemPropertyRequestFailed
	ErrorItemSave
	ErrorItemSavePropertyError
	ErrorLogonAsNetworkServiceFailed
	ErrorMailboxConfiguration
	ErrorMailboxDataArrayEmpty
	ErrorMailboxDataArrayTooBig
	ErrorMailboxLogonFailed
	ErrorMailboxMoveInProgress
	ErrorMailboxStoreUnavailable
	ErrorMailRecipientNotFound
	ErrorManagedFolderAlreadyExists
	ErrorManagedFolderNotFound
	ErrorManagedFoldersRootFailure
	ErrorMeetingSuggestionGenerationFailed
	ErrorMessageDispositionRequired
	ErrorMessageSizeExceeded
	ErrorMimeContentConversionFailed
	ErrorMimeContentInvalid
	ErrorMimeContentInvalidBase64String
	ErrorMissingArgument
	ErrorMissingEmailAddress
	ErrorMissingEmailAddressForManagedFolder
	ErrorMissingInformationEmailAddress
	ErrorMissingInformationReferenceItemID
	ErrorMissingItemForCreateItemAttachment
	ErrorMissingManagedFolderID
	ErrorMissingRecipients
	ErrorMissingUserIDInformation
	ErrorMoreThanOneAccessModeSpecified
	ErrorMoveCopyFailed
	ErrorMoveDistinguishedFolder
	ErrorNameResolutionMultipleResults
	ErrorNameResolutionNoMailbox
	ErrorNameResolutionNoResults
	ErrorNoCalendar
	ErrorNoDestinationCASDueToKerberosRequirements
	ErrorNoDestinationCASDueToSSLRequirements
	ErrorNoDestinationCASDueToVersionMismatch
	ErrorNoFolderClassOverride
	ErrorNoFreeBusyAccess
	ErrorNonExistentMailbox
	ErrorNonPrimarySmtpAddress
	ErrorNoPropertyTagForCustomProperties
	ErrorNoPublicFolderReplicaAvailable
	ErrorNoRespondingCASInDestinationSite
	ErrorNotDelegate
	ErrorNotEnoughMemory
	ErrorObjectTypeChanged
	ErrorOccurrenceCrossingBoundary
	ErrorOccurrenceTimeSpanTooBig
	ErrorOperationNotAllowedWithPublicFolderRoot
	ErrorParentFolderIDRequired
	ErrorParentFolderNotFound
	ErrorPasswordChangeRequired
	ErrorPasswordExpired
	ErrorPropertyUpdate
	ErrorPropertyValidationFailure
	ErrorProxiedSubscriptionCallFailure
	ErrorProxyCallFailed
	ErrorProxyGroupSidLimitExceeded
	ErrorProxyRequestNotAllowed
	ErrorProxyRequestProcessingFailed
	ErrorProxyServiceDiscoveryFailed
	ErrorProxyTokenExpired
	ErrorPublicFolderRequestProcessingFailed
	ErrorPublicFolderServerNotFound
	ErrorQueryFilterTooLong
	ErrorQuotaExceeded
	ErrorReadEventsFailed
	ErrorReadReceiptNotPending
	ErrorRecurrenceEndDateTooBig
	ErrorRecurrenceHasNoOccurrence
	ErrorRemoveDelegatesFailed
	ErrorRequestAborted
	ErrorRequestStreamTooBig
	ErrorRequiredPropertyMissing
	ErrorResolveNamesInvalidFolderType
	ErrorResolveNamesOnlyOneContactsFolderAllowed
	ErrorResponseSchemaValidation
	ErrorRestrictionTooComplex
	ErrorRestrictionTooLong
	ErrorResultSetTooBig
	ErrorSavedItemFolderNotFound
	ErrorSchemaValidation
	ErrorSearchFolderNotInitialized
	ErrorSendAsDenied
	ErrorSendMeetingCancellationsRequired
	ErrorSendMeetingInvitationsOrCancellationsRequired
	ErrorSendMeetingInvitationsRequired
	ErrorSentMeetingRequestUpdate
	ErrorSentTaskRequestUpdate
	ErrorServerBusy
	ErrorServiceDiscoveryFailed
	ErrorStaleObject
	ErrorSubmissionQuotaExceeded
	ErrorSubscriptionAccessDenied
	ErrorSubscriptionDelegateAccessNotSupported
	ErrorSubscriptionNotFound
	ErrorSubscriptionUnsubscribed
	ErrorSyncFolderNotFound
	ErrorTimeIntervalTooBig
	ErrorTimeoutExpired
	ErrorTimeZone
	ErrorToFolderNotFound
	ErrorTokenSerializationDenied
	ErrorUnableToGetUserOofSettings
	ErrorUnifiedMessagingDialPlanNotFound
	ErrorUnifiedMessagingRequestFailed
	ErrorUnifiedMessagingServerNotFound
	ErrorUnsupportedCulture
	ErrorUnsupportedMapiPropertyType
	ErrorUnsupportedMimeConversion
	ErrorUnsupportedPathForQuery
	ErrorUnsupportedPathForSortGroup
	ErrorUnsupportedPropertyDefinition
	ErrorUnsupportedQueryFilter
	ErrorUnsupportedRecurrence
	ErrorUnsupportedSubFilter
	ErrorUnsupportedTypeForConversion
	ErrorUpdateDelegatesFailed
	ErrorUpdatePropertyMismatch
	ErrorUserNotAllowedByPolicy
	ErrorUserNotUnifiedMessagingEnabled
	ErrorUserWithoutFederatedProxyAddress
	ErrorValueOutOfRange
	ErrorVirusDetected
	ErrorVirusMessageDeleted
	ErrorVoiceMailNotImplemented
	ErrorWebRequestInInvalidState
	ErrorWin32InteropError
	ErrorWorkingHoursSaveFailed
	ErrorWorkingHoursXmlMalformed
	ErrorWrongServerVersion
	ErrorWrongServerVersionDelegate
)

var responseCodeTokens = [...]string{
	ResponseCodeUnrecognized:                            "",
	NoError:                                             "NoError",
	ErrorAccessDenied:                                   "ErrorAccessDenied",
	ErrorAccessModeSpecified:                            "ErrorAccessModeSpecified",
	ErrorAccountDisabled:                                "ErrorAccountDisabled",
	ErrorAddDelegatesFailed:                             "ErrorAddDelegatesFailed",
	ErrorAddressSpaceNotFound:                           "ErrorAddressSpaceNotFound",
	ErrorADOperation:                                    "ErrorADOperation",
	ErrorADSessionFilter:                                "ErrorADSessionFilter",
	ErrorADUnavailable:                                  "ErrorADUnavailable",
	ErrorAffectedTaskOccurrencesRequired:                "ErrorAffectedTaskOccurrencesRequired",
	ErrorArchiveFolderPathCreation:                      "ErrorArchiveFolderPathCreation",
	ErrorArchiveMailboxNotEnabled:                       "ErrorArchiveMailboxNotEnabled",
	ErrorAttachmentNestLevelLimitExceeded:               "ErrorAttachmentNestLevelLimitExceeded",
	ErrorAttachmentSizeLimitExceeded:                    "ErrorAttachmentSizeLimitExceeded",
	ErrorAutoDiscoverFailed:                             "ErrorAutoDiscoverFailed",
	ErrorAvailabilityConfigNotFound:                     "ErrorAvailabilityConfigNotFound",
	ErrorBatchProcessingStopped:                         "ErrorBatchProcessingStopped",
	ErrorCalendarCannotMoveOrCopyOccurrence:             "ErrorCalendarCannotMoveOrCopyOccurrence",
	ErrorCalendarCannotUpdateDeletedItem:                "ErrorCalendarCannotUpdateDeletedItem",
	ErrorCalendarCannotUseIDForOccurrenceID:             "ErrorCalendarCannotUseIdForOccurrenceId",
	ErrorCalendarCannotUseIDForRecurringMasterID:        "ErrorCalendarCannotUseIdForRecurringMasterId",
	ErrorCalendarDurationIsTooLong:                      "ErrorCalendarDurationIsTooLong",
	ErrorCalendarEndDateIsEarlierThanStartDate:          "ErrorCalendarEndDateIsEarlierThanStartDate",
	ErrorCalendarFolderIsInvalidForCalendarView:         "ErrorCalendarFolderIsInvalidForCalendarView",
	ErrorCalendarInvalidAttributeValue:                  "ErrorCalendarInvalidAttributeValue",
	ErrorCalendarInvalidDayForTimeChangePattern:         "ErrorCalendarInvalidDayForTimeChangePattern",
	ErrorCalendarInvalidDayForWeeklyRecurrence:          "ErrorCalendarInvalidDayForWeeklyRecurrence",
	ErrorCalendarInvalidPropertyState:                   "ErrorCalendarInvalidPropertyState",
	ErrorCalendarInvalidRecurrence:                      "ErrorCalendarInvalidRecurrence",
	ErrorCalendarInvalidTimeZone:                        "ErrorCalendarInvalidTimeZone",
	ErrorCalendarIsCancelledForAccept:                   "ErrorCalendarIsCancelledForAccept",
	ErrorCalendarIsCancelledForDecline:                  "ErrorCalendarIsCancelledForDecline",
	ErrorCalendarIsCancelledForRemove:                   "ErrorCalendarIsCancelledForRemove",
	ErrorCalendarIsCancelledForTentative:                "ErrorCalendarIsCancelledForTentative",
	ErrorCalendarIsDelegatedForAccept:                   "ErrorCalendarIsDelegatedForAccept",
	ErrorCalendarIsDelegatedForDecline:                  "ErrorCalendarIsDelegatedForDecline",
	ErrorCalendarIsDelegatedForRemove:                   "ErrorCalendarIsDelegatedForRemove",
	ErrorCalendarIsDelegatedForTentative:                "ErrorCalendarIsDelegatedForTentative",
	ErrorCalendarIsNotOrganizer:                         "ErrorCalendarIsNotOrganizer",
	ErrorCalendarIsOrganizerForAccept:                   "ErrorCalendarIsOrganizerForAccept",
	ErrorCalendarIsOrganizerForDecline:                  "ErrorCalendarIsOrganizerForDecline",
	ErrorCalendarIsOrganizerForRemove:                   "ErrorCalendarIsOrganizerForRemove",
	ErrorCalendarIsOrganizerForTentative:                "ErrorCalendarIsOrganizerForTentative",
	ErrorCalendarMeetingRequestIsOutOfDate:              "ErrorCalendarMeetingRequestIsOutOfDate",
	ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange:  "ErrorCalendarOccurrenceIndexIsOutOfRecurrenceRange",
	ErrorCalendarOccurrenceIsDeletedFromRecurrence:      "ErrorCalendarOccurrenceIsDeletedFromRecurrence",
	ErrorCalendarOutOfRange:                             "ErrorCalendarOutOfRange",
	ErrorCalendarViewRangeTooBig:                        "ErrorCalendarViewRangeTooBig",
	ErrorCallerIsInvalidADAccount:                       "ErrorCallerIsInvalidADAccount",
	ErrorCannotCreateCalendarItemInNonCalendarFolder:    "ErrorCannotCreateCalendarItemInNonCalendarFolder",
	ErrorCannotCreateContactInNonContactFolder:          "ErrorCannotCreateContactInNonContactFolder",
	ErrorCannotCreatePostItemInNonMailFolder:            "ErrorCannotCreatePostItemInNonMailFolder",
	ErrorCannotCreateTaskInNonTaskFolder:                "ErrorCannotCreateTaskInNonTaskFolder",
	ErrorCannotDeleteObject:                             "ErrorCannotDeleteObject",
	ErrorCannotDeleteTaskOccurrence:                     "ErrorCannotDeleteTaskOccurrence",
	ErrorCannotEmptyFolder:                              "ErrorCannotEmptyFolder",
	ErrorCannotOpenFileAttachment:                       "ErrorCannotOpenFileAttachment",
	ErrorCannotSetCalendarPermissionOnNonCalendarFolder: "ErrorCannotSetCalendarPermissionOnNonCalendarFolder",
	ErrorCannotSetNonCalendarPermissionOnCalendarFolder: "ErrorCannotSetNonCalendarPermissionOnCalendarFolder",
	ErrorCannotSetPermissionUnknownEntries:              "ErrorCannotSetPermissionUnknownEntries",
	ErrorCannotUseFolderIDForItemID:                     "ErrorCannotUseFolderIdForItemId",
	ErrorCannotUseItemIDForFolderID:                     "ErrorCannotUseItemIdForFolderId",
	ErrorChangeKeyRequired:                              "ErrorChangeKeyRequired",
	ErrorChangeKeyRequiredForWriteOperations:            "ErrorChangeKeyRequiredForWriteOperations",
	ErrorConnectionFailed:                               "ErrorConnectionFailed",
	ErrorContentConversionFailed:                        "ErrorContentConversionFailed",
	ErrorCorruptData:                                    "ErrorCorruptData",
	ErrorCreateItemAccessDenied:                         "ErrorCreateItemAccessDenied",
	ErrorCreateManagedFolderPartialCompletion:           "ErrorCreateManagedFolderPartialCompletion",
	ErrorCreateSubfolderAccessDenied:                    "ErrorCreateSubfolderAccessDenied",
	ErrorCrossMailboxMoveCopy:                           "ErrorCrossMailboxMoveCopy",
	ErrorCrossSiteRequest:                               "ErrorCrossSiteRequest",
	ErrorDataSizeLimitExceeded:                          "ErrorDataSizeLimitExceeded",
	ErrorDataSourceOperation:                            "ErrorDataSourceOperation",
	ErrorDelegateAlreadyExists:                          "ErrorDelegateAlreadyExists",
	ErrorDelegateCannotAddOwner:                         "ErrorDelegateCannotAddOwner",
	ErrorDelegateMissingConfiguration:                   "ErrorDelegateMissingConfiguration",
	ErrorDelegateNoUser:                                 "ErrorDelegateNoUser",
	ErrorDelegateValidationFailed:                       "ErrorDelegateValidationFailed",
	ErrorDeleteDistinguishedFolder:                      "ErrorDeleteDistinguishedFolder",
	ErrorDeleteItemsFailed:                              "ErrorDeleteItemsFailed",
	ErrorDistinguishedUserNotSupported:                  "ErrorDistinguishedUserNotSupported",
	ErrorDistributionListMemberNotExist:                 "ErrorDistributionListMemberNotExist",
	ErrorDuplicateInputFolderNames:                      "ErrorDuplicateInputFolderNames",
	ErrorDuplicateSOAPHeader:                            "ErrorDuplicateSOAPHeader",
	ErrorDuplicateUserIdsSpecified:                      "ErrorDuplicateUserIdsSpecified",
	ErrorEmailAddressMismatch:                           "ErrorEmailAddressMismatch",
	ErrorEventNotFound:                                  "ErrorEventNotFound",
	ErrorExceededConnectionCount:                        "ErrorExceededConnectionCount",
	ErrorExceededFindCountLimit:                         "ErrorExceededFindCountLimit",
	ErrorExceededSubscriptionCount:                      "ErrorExceededSubscriptionCount",
	ErrorExpiredSubscription:                            "ErrorExpiredSubscription",
	ErrorFolderCorrupt:                                  "ErrorFolderCorrupt",
	ErrorFolderExists:                                   "ErrorFolderExists",
	ErrorFolderNotFound:                                 "ErrorFolderNotFound",
	ErrorFolderPropertRequestFailed:                     "ErrorFolderPropertRequestFailed",
	ErrorFolderSave:                                     "ErrorFolderSave",
	ErrorFolderSaveFailed:                               "ErrorFolderSaveFailed",
	ErrorFolderSavePropertyError:                        "ErrorFolderSavePropertyError",
	ErrorFreeBusyDLLimitReached:                         "ErrorFreeBusyDLLimitReached",
	ErrorFreeBusyGenerationFailed:                       "ErrorFreeBusyGenerationFailed",
	ErrorGetServerSecurityDescriptorFailed:              "ErrorGetServerSecurityDescriptorFailed",
	ErrorImpersonateUserDenied:                          "ErrorImpersonateUserDenied",
	ErrorImpersonationDenied:                            "ErrorImpersonationDenied",
	ErrorImpersonationFailed:                            "ErrorImpersonationFailed",
	ErrorIncorrectSchemaVersion:                         "ErrorIncorrectSchemaVersion",
	ErrorIncorrectUpdatePropertyCount:                   "ErrorIncorrectUpdatePropertyCount",
	ErrorIndividualMailboxLimitReached:                  "ErrorIndividualMailboxLimitReached",
	ErrorInsufficientResources:                          "ErrorInsufficientResources",
	ErrorInternalServerError:                            "ErrorInternalServerError",
	ErrorInternalServerTransientError:                   "ErrorInternalServerTransientError",
	ErrorInvalidAccessLevel:                             "ErrorInvalidAccessLevel",
	ErrorInvalidArgument:                                "ErrorInvalidArgument",
	ErrorInvalidAttachmentID:                            "ErrorInvalidAttachmentId",
	ErrorInvalidAttachmentSubfilter:                     "ErrorInvalidAttachmentSubfilter",
	ErrorInvalidAttachmentSubfilterTextFilter:           "ErrorInvalidAttachmentSubfilterTextFilter",
	ErrorInvalidAuthorizationContext:                    "ErrorInvalidAuthorizationContext",
	ErrorInvalidChangeKey:                               "ErrorInvalidChangeKey",
	ErrorInvalidClientSecurityContext:                   "ErrorInvalidClientSecurityContext",
	ErrorInvalidCompleteDate:                            "ErrorInvalidCompleteDate",
	ErrorInvalidContactEmailAddress:                     "ErrorInvalidContactEmailAddress",
	ErrorInvalidContactEmailIndex:                       "ErrorInvalidContactEmailIndex",
	ErrorInvalidCrossForestCredentials:                  "ErrorInvalidCrossForestCredentials",
	ErrorInvalidDelegatePermission:                      "ErrorInvalidDelegatePermission",
	ErrorInvalidDelegateUserID:                          "ErrorInvalidDelegateUserId",
	ErrorInvalidExcludesRestriction:                     "ErrorInvalidExcludesRestriction",
	ErrorInvalidExpressionTypeForSubFilter:              "ErrorInvalidExpressionTypeForSubFilter",
	ErrorInvalidExtendedProperty:                        "ErrorInvalidExtendedProperty",
	ErrorInvalidExtendedPropertyValue:                   "ErrorInvalidExtendedPropertyValue",
	ErrorInvalidFolderID:                                "ErrorInvalidFolderId",
	ErrorInvalidFolderTypeForOperation:                  "ErrorInvalidFolderTypeForOperation",
	ErrorInvalidFractionalPagingParameters:              "ErrorInvalidFractionalPagingParameters",
	ErrorInvalidFreeBusyViewType:                        "ErrorInvalidFreeBusyViewType",
	ErrorInvalidID:                                      "ErrorInvalidId",
	ErrorInvalidIDEmpty:                                 "ErrorInvalidIdEmpty",
	ErrorInvalidIDMalformed:                             "ErrorInvalidIdMalformed",
	ErrorInvalidIDMalformedEwsLegacyIDFormat:            "ErrorInvalidIdMalformedEwsLegacyIdFormat",
	ErrorInvalidIDMonikerTooLong:                        "ErrorInvalidIdMonikerTooLong",
	ErrorInvalidIDNotAnItemAttachmentID:                 "ErrorInvalidIdNotAnItemAttachmentId",
	ErrorInvalidIDReturnedByResolveNames:                "ErrorInvalidIdReturnedByResolveNames",
	ErrorInvalidIDStoreObjectIDTooLong:                  "ErrorInvalidIdStoreObjectIdTooLong",
	ErrorInvalidIDTooManyAttachmentLevels:               "ErrorInvalidIdTooManyAttachmentLevels",
	ErrorInvalidIDXml:                                   "ErrorInvalidIdXml",
	ErrorInvalidIndexedPagingParameters:                 "ErrorInvalidIndexedPagingParameters",
	ErrorInvalidInternetHeaderChildNodes:                "ErrorInvalidInternetHeaderChildNodes",
	ErrorInvalidItemForOperationAcceptItem:              "ErrorInvalidItemForOperationAcceptItem",
	ErrorInvalidItemForOperationCancelItem:              "ErrorInvalidItemForOperationCancelItem",
	ErrorInvalidItemForOperationCreateItem:              "ErrorInvalidItemForOperationCreateItem",
	ErrorInvalidItemForOperationCreateItemAttachment:    "ErrorInvalidItemForOperationCreateItemAttachment",
	ErrorInvalidItemForOperationDeclineItem:             "ErrorInvalidItemForOperationDeclineItem",
	ErrorInvalidItemForOperationExpandDL:                "ErrorInvalidItemForOperationExpandDL",
	ErrorInvalidItemForOperationRemoveItem:              "ErrorInvalidItemForOperationRemoveItem",
	ErrorInvalidItemForOperationSendItem:                "ErrorInvalidItemForOperationSendItem",
	ErrorInvalidItemForOperationTentative:               "ErrorInvalidItemForOperationTentative",
	ErrorInvalidManagedFolderProperty:                   "ErrorInvalidManagedFolderProperty",
	ErrorInvalidManagedFolderQuota:                      "ErrorInvalidManagedFolderQuota",
	ErrorInvalidManagedFolderSize:                       "ErrorInvalidManagedFolderSize",
	ErrorInvalidMergedFreeBusyInterval:                  "ErrorInvalidMergedFreeBusyInterval",
	ErrorInvalidNameForNameResolution:                   "ErrorInvalidNameForNameResolution",
	ErrorInvalidNetworkServiceContext:                   "ErrorInvalidNetworkServiceContext",
	ErrorInvalidOofParameter:                            "ErrorInvalidOofParameter",
	ErrorInvalidOperation:                               "ErrorInvalidOperation",
	ErrorInvalidPagingMaxRows:                           "ErrorInvalidPagingMaxRows",
	ErrorInvalidParentFolder:                            "ErrorInvalidParentFolder",
	ErrorInvalidPercentCompleteValue:                    "ErrorInvalidPercentCompleteValue",
	ErrorInvalidPropertyAppend:                          "ErrorInvalidPropertyAppend",
	ErrorInvalidPropertyDelete:                          "ErrorInvalidPropertyDelete",
	ErrorInvalidPropertyForExists:                       "ErrorInvalidPropertyForExists",
	ErrorInvalidPropertyForOperation:                    "ErrorInvalidPropertyForOperation",
	ErrorInvalidPropertyRequest:                         "ErrorInvalidPropertyRequest",
	ErrorInvalidPropertySet:                             "ErrorInvalidPropertySet",
	ErrorInvalidPropertyUpdateSentMessage:               "ErrorInvalidPropertyUpdateSentMessage",
	ErrorInvalidProxySecurityContext:                    "ErrorInvalidProxySecurityContext",
	ErrorInvalidPullSubscriptionID:                      "ErrorInvalidPullSubscriptionId",
	ErrorInvalidPushSubscriptionUrl:                     "ErrorInvalidPushSubscriptionUrl",
	ErrorInvalidRecipients:                              "ErrorInvalidRecipients",
	ErrorInvalidRecipientSubfilter:                      "ErrorInvalidRecipientSubfilter",
	ErrorInvalidRecipientSubfilterComparison:            "ErrorInvalidRecipientSubfilterComparison",
	ErrorInvalidRecipientSubfilterOrder:                 "ErrorInvalidRecipientSubfilterOrder",
	ErrorInvalidRecipientSubfilterTextFilter:            "ErrorInvalidRecipientSubfilterTextFilter",
	ErrorInvalidReferenceItem:                           "ErrorInvalidReferenceItem",
	ErrorInvalidRequest:                                 "ErrorInvalidRequest",
	ErrorInvalidRestriction:                             "ErrorInvalidRestriction",
	ErrorInvalidRoutingType:                             "ErrorInvalidRoutingType",
	ErrorInvalidScheduledOofDuration:                    "ErrorInvalidScheduledOofDuration",
	ErrorInvalidSecurityDescriptor:                      "ErrorInvalidSecurityDescriptor",
	ErrorInvalidSendItemSaveSettings:                    "ErrorInvalidSendItemSaveSettings",
	ErrorInvalidSerializedAccessToken:                   "ErrorInvalidSerializedAccessToken",
	ErrorInvalidServerVersion:                           "ErrorInvalidServerVersion",
	ErrorInvalidSid:                                     "ErrorInvalidSid",
	ErrorInvalidSmtpAddress:                             "ErrorInvalidSmtpAddress",
	ErrorInvalidSubfilterType:                           "ErrorInvalidSubfilterType",
	ErrorInvalidSubfilterTypeNotAttendeeType:            "ErrorInvalidSubfilterTypeNotAttendeeType",
	ErrorInvalidSubfilterTypeNotRecipientType:           "ErrorInvalidSubfilterTypeNotRecipientType",
	ErrorInvalidSubscription:                            "ErrorInvalidSubscription",
	ErrorInvalidSyncStateData:                           "ErrorInvalidSyncStateData",
	ErrorInvalidTimeInterval:                            "ErrorInvalidTimeInterval",
	ErrorInvalidUserInfo:                                "ErrorInvalidUserInfo",
	ErrorInvalidUserOofSettings:                         "ErrorInvalidUserOofSettings",
	ErrorInvalidUserPrincipalName:                       "ErrorInvalidUserPrincipalName",
	ErrorInvalidUserSid:                                 "ErrorInvalidUserSid",
	ErrorInvalidValueForProperty:                        "ErrorInvalidValueForProperty",
	ErrorInvalidWatermark:                               "ErrorInvalidWatermark",
	ErrorIrresolvableConflict:                           "ErrorIrresolvableConflict",
	ErrorItemCorrupt:                                    "ErrorItemCorrupt",
	ErrorItemNotFound:                                   "ErrorItemNotFound",
	ErrorItemPropertyRequestFailed:                      "ErrorItemPropertyRequestFailed",
	ErrorItemSave:                                       "ErrorItemSave",
	ErrorItemSavePropertyError:                          "ErrorItemSavePropertyError",
	ErrorLogonAsNetworkServiceFailed:                    "ErrorLogonAsNetworkServiceFailed",
	ErrorMailboxConfiguration:                           "ErrorMailboxConfiguration",
	ErrorMailboxDataArrayEmpty:                          "ErrorMailboxDataArrayEmpty",
	ErrorMailboxDataArrayTooBig:                         "ErrorMailboxDataArrayTooBig",
	ErrorMailboxLogonFailed:                             "ErrorMailboxLogonFailed",
	ErrorMailboxMoveInProgress:                          "ErrorMailboxMoveInProgress",
	ErrorMailboxStoreUnavailable:                        "ErrorMailboxStoreUnavailable",
	ErrorMailRecipientNotFound:                          "ErrorMailRecipientNotFound",
	ErrorManagedFolderAlreadyExists:                     "ErrorManagedFolderAlreadyExists",
	ErrorManagedFolderNotFound:                          "ErrorManagedFolderNotFound",
	ErrorManagedFoldersRootFailure:                      "ErrorManagedFoldersRootFailure",
	ErrorMeetingSuggestionGenerationFailed:              "ErrorMeetingSuggestionGenerationFailed",
	ErrorMessageDispositionRequired:                     "ErrorMessageDispositionRequired",
	ErrorMessageSizeExceeded:                            "ErrorMessageSizeExceeded",
	ErrorMimeContentConversionFailed:                    "ErrorMimeContentConversionFailed",
	ErrorMimeContentInvalid:                             "ErrorMimeContentInvalid",
	ErrorMimeContentInvalidBase64String:                 "ErrorMimeContentInvalidBase64String",
	ErrorMissingArgument:                                "ErrorMissingArgument",
	ErrorMissingEmailAddress:                            "ErrorMissingEmailAddress",
	ErrorMissingEmailAddressForManagedFolder:            "ErrorMissingEmailAddressForManagedFolder",
	ErrorMissingInformationEmailAddress:                 "ErrorMissingInformationEmailAddress",
	ErrorMissingInformationReferenceItemID:              "ErrorMissingInformationReferenceItemId",
	ErrorMissingItemForCreateItemAttachment:             "ErrorMissingItemForCreateItemAttachment",
	ErrorMissingManagedFolderID:                         "ErrorMissingManagedFolderId",
	ErrorMissingRecipients:                              "ErrorMissingRecipients",
	ErrorMissingUserIDInformation:                       "ErrorMissingUserIdInformation",
	ErrorMoreThanOneAccessModeSpecified:                 "ErrorMoreThanOneAccessModeSpecified",
	ErrorMoveCopyFailed:                                 "ErrorMoveCopyFailed",
	ErrorMoveDistinguishedFolder:                        "ErrorMoveDistinguishedFolder",
	ErrorNameResolutionMultipleResults:                  "ErrorNameResolutionMultipleResults",
	ErrorNameResolutionNoMailbox:                        "ErrorNameResolutionNoMailbox",
	ErrorNameResolutionNoResults:                        "ErrorNameResolutionNoResults",
	ErrorNoCalendar:                                     "ErrorNoCalendar",
	ErrorNoDestinationCASDueToKerberosRequirements:      "ErrorNoDestinationCASDueToKerberosRequirements",
	ErrorNoDestinationCASDueToSSLRequirements:           "ErrorNoDestinationCASDueToSSLRequirements",
	ErrorNoDestinationCASDueToVersionMismatch:           "ErrorNoDestinationCASDueToVersionMismatch",
	ErrorNoFolderClassOverride:                          "ErrorNoFolderClassOverride",
	ErrorNoFreeBusyAccess:                               "ErrorNoFreeBusyAccess",
	ErrorNonExistentMailbox:                             "ErrorNonExistentMailbox",
	ErrorNonPrimarySmtpAddress:                          "ErrorNonPrimarySmtpAddress",
	ErrorNoPropertyTagForCustomProperties:               "ErrorNoPropertyTagForCustomProperties",
	ErrorNoPublicFolderReplicaAvailable:                 "ErrorNoPublicFolderReplicaAvailable",
	ErrorNoRespondingCASInDestinationSite:               "ErrorNoRespondingCASInDestinationSite",
	ErrorNotDelegate:                                    "ErrorNotDelegate",
	ErrorNotEnoughMemory:                                "ErrorNotEnoughMemory",
	ErrorObjectTypeChanged:                              "ErrorObjectTypeChanged",
	ErrorOccurrenceCrossingBoundary:                     "ErrorOccurrenceCrossingBoundary",
	ErrorOccurrenceTimeSpanTooBig:                       "ErrorOccurrenceTimeSpanTooBig",
	ErrorOperationNotAllowedWithPublicFolderRoot:        "ErrorOperationNotAllowedWithPublicFolderRoot",
	ErrorParentFolderIDRequired:                         "ErrorParentFolderIdRequired",
	ErrorParentFolderNotFound:                           "ErrorParentFolderNotFound",
	ErrorPasswordChangeRequired:                         "ErrorPasswordChangeRequired",
	ErrorPasswordExpired:                                "ErrorPasswordExpired",
	ErrorPropertyUpdate:                                 "ErrorPropertyUpdate",
	ErrorPropertyValidationFailure:                      "ErrorPropertyValidationFailure",
	ErrorProxiedSubscriptionCallFailure:                 "ErrorProxiedSubscriptionCallFailure",
	ErrorProxyCallFailed:                                "ErrorProxyCallFailed",
	ErrorProxyGroupSidLimitExceeded:                     "ErrorProxyGroupSidLimitExceeded",
	ErrorProxyRequestNotAllowed:                         "ErrorProxyRequestNotAllowed",
	ErrorProxyRequestProcessingFailed:                   "ErrorProxyRequestProcessingFailed",
	ErrorProxyServiceDiscoveryFailed:                    "ErrorProxyServiceDiscoveryFailed",
	ErrorProxyTokenExpired:                              "ErrorProxyTokenExpired",
	ErrorPublicFolderRequestProcessingFailed:            "ErrorPublicFolderRequestProcessingFailed",
	ErrorPublicFolderServerNotFound:                     "ErrorPublicFolderServerNotFound",
	ErrorQueryFilterTooLong:                             "ErrorQueryFilterTooLong",
	ErrorQuotaExceeded:                                  "ErrorQuotaExceeded",
	ErrorReadEventsFailed:                               "ErrorReadEventsFailed",
	ErrorReadReceiptNotPending:                          "ErrorReadReceiptNotPending",
	ErrorRecurrenceEndDateTooBig:                        "ErrorRecurrenceEndDateTooBig",
	ErrorRecurrenceHasNoOccurrence:                      "ErrorRecurrenceHasNoOccurrence",
	ErrorRemoveDelegatesFailed:                          "ErrorRemoveDelegatesFailed",
	ErrorRequestAborted:                                 "ErrorRequestAborted",
	ErrorRequestStreamTooBig:                            "ErrorRequestStreamTooBig",
	ErrorRequiredPropertyMissing:                        "ErrorRequiredPropertyMissing",
	ErrorResolveNamesInvalidFolderType:                  "ErrorResolveNamesInvalidFolderType",
	ErrorResolveNamesOnlyOneContactsFolderAllowed:       "ErrorResolveNamesOnlyOneContactsFolderAllowed",
	ErrorResponseSchemaValidation:                       "ErrorResponseSchemaValidation",
	ErrorRestrictionTooComplex:                          "ErrorRestrictionTooComplex",
	ErrorRestrictionTooLong:                             "ErrorRestrictionTooLong",
	ErrorResultSetTooBig:                                "ErrorResultSetTooBig",
	ErrorSavedItemFolderNotFound:                        "ErrorSavedItemFolderNotFound",
	ErrorSchemaValidation:                               "ErrorSchemaValidation",
	ErrorSearchFolderNotInitialized:                     "ErrorSearchFolderNotInitialized",
	ErrorSendAsDenied:                                   "ErrorSendAsDenied",
	ErrorSendMeetingCancellationsRequired:               "ErrorSendMeetingCancellationsRequired",
	ErrorSendMeetingInvitationsOrCancellationsRequired:  "ErrorSendMeetingInvitationsOrCancellationsRequired",
	ErrorSendMeetingInvitationsRequired:                 "ErrorSendMeetingInvitationsRequired",
	ErrorSentMeetingRequestUpdate:                       "ErrorSentMeetingRequestUpdate",
	ErrorSentTaskRequestUpdate:                          "ErrorSentTaskRequestUpdate",
	ErrorServerBusy:                                     "ErrorServerBusy",
	ErrorServiceDiscoveryFailed:                         "ErrorServiceDiscoveryFailed",
	ErrorStaleObject:                                    "ErrorStaleObject",
	ErrorSubmissionQuotaExceeded:                        "ErrorSubmissionQuotaExceeded",
	ErrorSubscriptionAccessDenied:                       "ErrorSubscriptionAccessDenied",
	ErrorSubscriptionDelegateAccessNotSupported:         "ErrorSubscriptionDelegateAccessNotSupported",
	ErrorSubscriptionNotFound:                           "ErrorSubscriptionNotFound",
	ErrorSubscriptionUnsubscribed:                       "ErrorSubscriptionUnsubscribed",
	ErrorSyncFolderNotFound:                             "ErrorSyncFolderNotFound",
	ErrorTimeIntervalTooBig:                             "ErrorTimeIntervalTooBig",
	ErrorTimeoutExpired:                                 "ErrorTimeoutExpired",
	ErrorTimeZone:                                       "ErrorTimeZone",
	ErrorToFolderNotFound:                               "ErrorToFolderNotFound",
	ErrorTokenSerializationDenied:                       "ErrorTokenSerializationDenied",
	ErrorUnableToGetUserOofSettings:                     "ErrorUnableToGetUserOofSettings",
	ErrorUnifiedMessagingDialPlanNotFound:               "ErrorUnifiedMessagingDialPlanNotFound",
	ErrorUnifiedMessagingRequestFailed:                  "ErrorUnifiedMessagingRequestFailed",
	ErrorUnifiedMessagingServerNotFound:                 "ErrorUnifiedMessagingServerNotFound",
	ErrorUnsupportedCulture:                             "ErrorUnsupportedCulture",
	ErrorUnsupportedMapiPropertyType:                    "ErrorUnsupportedMapiPropertyType",
	ErrorUnsupportedMimeConversion:                      "ErrorUnsupportedMimeConversion",
	ErrorUnsupportedPathForQuery:                        "ErrorUnsupportedPathForQuery",
	ErrorUnsupportedPathForSortGroup:                    "ErrorUnsupportedPathForSortGroup",
	ErrorUnsupportedPropertyDefinition:                  "ErrorUnsupportedPropertyDefinition",
	ErrorUnsupportedQueryFilter:                         "ErrorUnsupportedQueryFilter",
	ErrorUnsupportedRecurrence:                          "ErrorUnsupportedRecurrence",
	ErrorUnsupportedSubFilter:                           "ErrorUnsupportedSubFilter",
	ErrorUnsupportedTypeForConversion:                   "ErrorUnsupportedTypeForConversion",
	ErrorUpdateDelegatesFailed:                          "ErrorUpdateDelegatesFailed",
	ErrorUpdatePropertyMismatch:                         "ErrorUpdatePropertyMismatch",
	ErrorUserNotAllowedByPolicy:                         "ErrorUserNotAllowedByPolicy",
	ErrorUserNotUnifiedMessagingEnabled:                 "ErrorUserNotUnifiedMessagingEnabled",
	ErrorUserWithoutFederatedProxyAddress:               "ErrorUserWithoutFederatedProxyAddress",
	ErrorValueOutOfRange:                                "ErrorValueOutOfRange",
	ErrorVirusDetected:                                  "ErrorVirusDetected",
	ErrorVirusMessageDeleted:                            "ErrorVirusMessageDeleted",
	ErrorVoiceMailNotImplemented:                        "ErrorVoiceMailNotImplemented",
	ErrorWebRequestInInvalidState:                       "ErrorWebRequestInInvalidState",
	ErrorWin32InteropError:                              "ErrorWin32InteropError",
	ErrorWorkingHoursSaveFailed:                         "ErrorWorkingHoursSaveFailed",
	ErrorWorkingHoursXmlMalformed:                       "ErrorWorkingHoursXmlMalformed",
	ErrorWrongServerVersion:                             "ErrorWrongServerVersion",
	ErrorWrongServerVersionDelegate:                     "ErrorWrongServerVersionDelegate",
}

var (
	responseCodesByToken map[string]ResponseCode
	responseCodeNames    []string
)

func init() {
	responseCodesByToken = make(map[string]ResponseCode, len(responseCodeTokens))
	responseCodeNames = make([]string, len(responseCodeTokens))
	for code, token := range responseCodeTokens {
		if token == "" {
			continue
		}
		responseCodesByToken[token] = ResponseCode(code)
		responseCodeNames[code] = snakeCase(token)
	}
	responseCodeNames[ResponseCodeUnrecognized] = "unrecognized_response_code"
}

// LookupResponseCode resolves a wire token. The returned message is the
// canonical text for the code, which is the token itself. Unknown tokens
// resolve to ResponseCodeUnrecognized with the raw token as message.
func LookupResponseCode(token string) (ResponseCode, string) {
	code, ok := responseCodesByToken[token]
	if !ok {
		return ResponseCodeUnrecognized, token
	}
	return code, token
}

// String returns the wire token, or "" for ResponseCodeUnrecognized.
func (c ResponseCode) String() string {
	if c < 0 || int(c) >= len(responseCodeTokens) {
		return ""
	}
	return responseCodeTokens[c]
}

// Name returns the snake_case kind of the code, e.g. error_invalid_id_empty.
func (c ResponseCode) Name() string {
	if c < 0 || int(c) >= len(responseCodeNames) {
		return responseCodeNames[ResponseCodeUnrecognized]
	}
	return responseCodeNames[c]
}

func snakeCase(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i, c := range r {
		if i > 0 && unicode.IsUpper(c) {
			prev := r[i-1]
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(c))
	}
	return b.String()
}
