// SPDX-License-Identifier: MPL-2.0

package packref

import (
	"strings"
)

type (
	// RawReference is the syntactic split of a reference string. Name still
	// carries any "$base"/"$workspace" suffix. An empty Namespace or SubPath
	// means the part was absent.
	RawReference struct {
		Input     string
		Namespace string
		Name      string
		SubPath   string
	}

	// ResolvedReference is a RawReference with its scope suffix stripped and
	// its identity validated.
	ResolvedReference struct {
		Input     string
		Namespace string
		Name      string
		SubPath   string
		Scope     Scope
	}
)

// Parse splits raw into namespace, name and sub path.
//
// Zero '@' means no namespace; exactly one means everything before it is the
// namespace; more than one is rejected. The name side is split on its first
// '/', everything after it (which may contain further '/') is the sub path.
func Parse(raw string) (RawReference, error) {
	ref := RawReference{Input: raw}

	nameSide := raw
	switch strings.Count(raw, "@") {
	case 0:
	case 1:
		ns, rest, _ := strings.Cut(raw, "@")
		if ns == "" {
			return RawReference{}, &MalformedReferenceError{Input: raw, Reason: ReasonMissingNamespace}
		}
		ref.Namespace = ns
		nameSide = rest
	default:
		return RawReference{}, &MalformedReferenceError{
			Input:  raw,
			Reason: ReasonFormat,
			Detail: "expected at most one '@'",
		}
	}

	name, subPath, _ := strings.Cut(nameSide, "/")
	if name == "" {
		return RawReference{}, &MalformedReferenceError{Input: raw, Reason: ReasonMissingName}
	}
	ref.Name = name
	ref.SubPath = subPath

	return ref, nil
}

// ParseResolved parses raw and resolves it in one step.
func ParseResolved(raw string) (ResolvedReference, error) {
	rawRef, err := Parse(raw)
	if err != nil {
		return ResolvedReference{}, err
	}
	return rawRef.Resolve()
}

// Resolve strips the scope suffix from the name and validates the identity.
// Support scopes compute a fixed path from namespace and name, so they
// require a namespace.
func (r RawReference) Resolve() (ResolvedReference, error) {
	name, scope := splitScope(r.Name)
	if name == "" {
		return ResolvedReference{}, &MalformedReferenceError{Input: r.Input, Reason: ReasonMissingName}
	}

	if r.Namespace != "" {
		if err := validatePart(r.Input, "namespace", r.Namespace); err != nil {
			return ResolvedReference{}, err
		}
	} else if scope.IsSupport() {
		return ResolvedReference{}, &MalformedReferenceError{
			Input:  r.Input,
			Reason: ReasonMissingNamespace,
			Detail: "the " + scope.Suffix() + " scope needs namespace@name",
		}
	}
	if err := validatePart(r.Input, "name", name); err != nil {
		return ResolvedReference{}, err
	}

	return ResolvedReference{
		Input:     r.Input,
		Namespace: r.Namespace,
		Name:      name,
		SubPath:   r.SubPath,
		Scope:     scope,
	}, nil
}

// HasNamespace reports whether the reference named its namespace.
func (r ResolvedReference) HasNamespace() bool { return r.Namespace != "" }

// Identity returns the namespace/name pair. Namespace is empty when the
// reference did not name one.
func (r ResolvedReference) Identity() PackIdentity {
	return PackIdentity{Namespace: r.Namespace, Name: r.Name}
}

// String renders the reference in its canonical textual form.
func (r ResolvedReference) String() string {
	var sb strings.Builder
	if r.Namespace != "" {
		sb.WriteString(r.Namespace)
		sb.WriteByte('@')
	}
	sb.WriteString(r.Name)
	sb.WriteString(r.Scope.Suffix())
	if r.SubPath != "" {
		sb.WriteByte('/')
		sb.WriteString(r.SubPath)
	}
	return sb.String()
}

func splitScope(name string) (string, Scope) {
	if base, ok := strings.CutSuffix(name, BaseScopeSuffix); ok {
		return base, ScopeBaseSupport
	}
	if base, ok := strings.CutSuffix(name, WorkspaceScopeSuffix); ok {
		return base, ScopeWorkspaceSupport
	}
	return name, ScopePackDir
}
