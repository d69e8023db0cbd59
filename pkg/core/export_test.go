package core

// Dynamic native with a chosen ordinal, for tests that need fixed ordinals.
func DynamicSyncAt(ordinal Ordinal, native SyncNative) DynamicSync {
	return DynamicSync{ordinal, native}
}
