package errors

// Notification failures. The messages are user facing and stable.
var (
	// ErrCredentialsNull is returned when no credentials id was given or inferred.
	ErrCredentialsNull = New("Credentials were null or empty")

	// ErrCredentialsNotFound is returned when the credential store has no entry for the id.
	ErrCredentialsNotFound = New("The credentials were not found.  Please check them")

	// ErrCredentialsUnsupported is returned for credential kinds other than
	// username/password and secret text.
	ErrCredentialsUnsupported = New("Sorry, the supplied type of credentials are not supported")

	// ErrCredentialsInvalid is returned when the hosting service rejects the credentials.
	ErrCredentialsInvalid = New("The supplied credentials are invalid to login")

	// ErrRepositoryNotFound is returned when the repository is not visible to the credentials.
	ErrRepositoryNotFound = New("The specified repository does not exist.  Please ensure the supplied credentials have access to it")

	// ErrCommitNotFound is returned when the commit cannot be fetched from the repository.
	ErrCommitNotFound = New("The specified commit does not exist in the specified repository")

	// ErrCannotInferGitData is returned when the build has no GitHub source configured.
	ErrCannotInferGitData = New("Unable to infer git data, please specify repo, credentialsId and sha values")

	// ErrCannotInferCommit is returned when the build revision carries no usable hash.
	ErrCannotInferCommit = New("Could not infer exact commit to use, please specify one")

	// ErrCannotInferCredentials is returned when the GitHub source has no scan credentials.
	ErrCannotInferCredentials = New("Can not infer exact credentialsId to use, please specify one")

	// ErrCannotInferRepository is returned when the GitHub source names no repository.
	ErrCannotInferRepository = New("Can not infer exact repository to use, please specify one")

	// ErrDeliveryFailed is returned when the status could not be posted.
	ErrDeliveryFailed = New("Failed to set the commit status")

	// ErrInvalidRequest is returned when the notification request is malformed.
	ErrInvalidRequest = New("Invalid notification request, status and description are required")
)
