package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	Providers ProviderRegistry
	Fetcher   JSONFetcher

	// Device
	Messenger DeviceMessenger
	Locator   Locator
	DebugSink DebugSink

	// Storage
	SettingsStore KeyValueStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	LogLevel       LogLevelController
	Metrics        MetricsCollector
	Health         SystemHealthChecker
}
