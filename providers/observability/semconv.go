package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the engine.

// --- Generation Attributes ---

const (
	// AttrGenerationTopic is the requested presentation topic
	AttrGenerationTopic = "generation.topic"

	// AttrGenerationSlides is the requested number of slides
	AttrGenerationSlides = "generation.slides"

	// AttrGenerationTheme is the requested theme name
	AttrGenerationTheme = "generation.theme"

	// AttrGenerationSlot is the zero-based slide slot being generated
	AttrGenerationSlot = "generation.slot"

	// AttrGenerationProvenance is the provenance recorded for a content block
	AttrGenerationProvenance = "generation.provenance"
)

// --- Provider Attributes ---

const (
	// AttrProviderName is the name of the content provider (e.g. "openai", "template")
	AttrProviderName = "provider.name"

	// AttrProviderEndpoint is the API endpoint URL
	AttrProviderEndpoint = "provider.endpoint"

	// AttrProviderModel is the model identifier used for the request
	AttrProviderModel = "provider.model"

	// AttrProviderAttempt is the 1-based attempt number for a provider call
	AttrProviderAttempt = "provider.attempt"

	// AttrProviderMaxTokens is the token budget for the request
	AttrProviderMaxTokens = "provider.max_tokens" // #nosec G101 -- not a credential, refers to LLM tokens
)

// --- Artifact Attributes ---

const (
	// AttrArtifactID is the opaque artifact identifier
	AttrArtifactID = "artifact.id"

	// AttrArtifactFilename is the human-readable display filename
	AttrArtifactFilename = "artifact.filename"

	// AttrArtifactSize is the blob size in bytes
	AttrArtifactSize = "artifact.size"

	// AttrArtifactStatus is the lifecycle status (active, expired, deleted)
	AttrArtifactStatus = "artifact.status"

	// AttrArtifactDownloads is the current download count
	AttrArtifactDownloads = "artifact.downloads"
)

// --- Sweeper Attributes ---

const (
	// AttrSweepPurged is the number of artifacts removed by a sweep
	AttrSweepPurged = "sweep.purged"

	// AttrSweepInterval is the configured sweep interval
	AttrSweepInterval = "sweep.interval"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanSubmitGeneration is the span name for a full generation request
	SpanSubmitGeneration = "engine.submit_generation"

	// SpanOrchestratorGenerate is the span name for content-set assembly
	SpanOrchestratorGenerate = "orchestrator.generate"

	// SpanProviderRequest is the span name for a single provider API request
	SpanProviderRequest = "provider.request"

	// SpanStoreOperation is the span name for artifact store operations
	SpanStoreOperation = "store.operation"

	// SpanSweep is the span name for one sweeper pass
	SpanSweep = "sweeper.sweep"
)

// --- Event Names ---

const (
	// EventProviderRequestStart marks the start of a provider request
	EventProviderRequestStart = "provider.request.start"

	// EventProviderRequestEnd marks the end of a provider request
	EventProviderRequestEnd = "provider.request.end"

	// EventProviderFallback marks a fall-through to the next provider in the chain
	EventProviderFallback = "provider.fallback"

	// EventSlotGenerated marks the completion of one slide slot
	EventSlotGenerated = "generation.slot.done"

	// EventArtifactCreated marks a successful artifact store write
	EventArtifactCreated = "artifact.created"

	// EventArtifactExpired marks a lazy expiry transition observed on fetch
	EventArtifactExpired = "artifact.expired"
)
