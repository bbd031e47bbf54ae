package types

// ShellLink is a fully decoded shell link. Optional sections are nil (or
// empty) when the header flags do not announce them.
type ShellLink struct {
	Header     ShellLinkHeader
	IDList     *IDList
	LinkInfo   *LinkInfo
	StringData StringData
	ExtraData  []ExtraDataBlock
}

// Block returns the first extra data block with the given signature.
func (l *ShellLink) Block(signature uint32) (ExtraDataBlock, bool) {
	for _, b := range l.ExtraData {
		if b.Signature() == signature {
			return b, true
		}
	}
	return nil, false
}

func findBlock[T ExtraDataBlock](blocks []ExtraDataBlock) (T, bool) {
	for _, b := range blocks {
		if v, ok := b.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (l *ShellLink) EnvironmentVariables() (*EnvironmentVariableDataBlock, bool) {
	return findBlock[*EnvironmentVariableDataBlock](l.ExtraData)
}

func (l *ShellLink) Console() (*ConsoleDataBlock, bool) {
	return findBlock[*ConsoleDataBlock](l.ExtraData)
}

func (l *ShellLink) Tracker() (*TrackerDataBlock, bool) {
	return findBlock[*TrackerDataBlock](l.ExtraData)
}

func (l *ShellLink) ConsoleFE() (*ConsoleFEDataBlock, bool) {
	return findBlock[*ConsoleFEDataBlock](l.ExtraData)
}

func (l *ShellLink) SpecialFolder() (*SpecialFolderDataBlock, bool) {
	return findBlock[*SpecialFolderDataBlock](l.ExtraData)
}

func (l *ShellLink) Darwin() (*DarwinDataBlock, bool) {
	return findBlock[*DarwinDataBlock](l.ExtraData)
}

func (l *ShellLink) IconEnvironment() (*IconEnvironmentDataBlock, bool) {
	return findBlock[*IconEnvironmentDataBlock](l.ExtraData)
}

func (l *ShellLink) Shim() (*ShimDataBlock, bool) {
	return findBlock[*ShimDataBlock](l.ExtraData)
}

func (l *ShellLink) PropertyStore() (*PropertyStoreDataBlock, bool) {
	return findBlock[*PropertyStoreDataBlock](l.ExtraData)
}

func (l *ShellLink) KnownFolder() (*KnownFolderDataBlock, bool) {
	return findBlock[*KnownFolderDataBlock](l.ExtraData)
}

func (l *ShellLink) VistaAndAboveIDList() (*VistaAndAboveIDListDataBlock, bool) {
	return findBlock[*VistaAndAboveIDListDataBlock](l.ExtraData)
}

// TargetPath returns the best path to the target recorded in LinkInfo: the
// local path when present, otherwise the network path. It does not touch the
// filesystem. When LinkInfo is absent it falls back to the
// EnvironmentVariableDataBlock target, then to RelativePath.
func (l *ShellLink) TargetPath() string {
	if p := l.LinkInfo.LocalPath(); p != "" {
		return p
	}
	if p := l.LinkInfo.NetworkPath(); p != "" {
		return p
	}
	if env, ok := l.EnvironmentVariables(); ok {
		if t := env.Target(); t != "" {
			return t
		}
	}
	if rel, ok := l.StringData.Get(StringRelativePath); ok {
		return rel
	}
	return ""
}
