package xdr

// SorobanCredentialsType discriminates SorobanCredentials (C11).
type SorobanCredentialsType int32

const (
	SorobanCredentialsSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsAddress       SorobanCredentialsType = 1
)

// SorobanAddressCredentials authorizes a contract invocation on behalf of an
// SCAddress via a signed nonce good until SignatureExpirationLedger
// (spec.md §11 authorization entries).
type SorobanAddressCredentials struct {
	Address                   SCAddress
	Nonce                     int64
	SignatureExpirationLedger uint32
	Signature                 SCVal
}

var sorobanAddressCredentialsCodec = Codec[SorobanAddressCredentials]{
	EncodeFn: func(w *Writer, v SorobanAddressCredentials) error {
		if err := SCAddressCodec.EncodeFn(w, v.Address); err != nil {
			return err
		}
		if err := w.WriteI64(v.Nonce); err != nil {
			return err
		}
		if err := w.WriteU32(v.SignatureExpirationLedger); err != nil {
			return err
		}
		return encodeSCVal(w, v.Signature)
	},
	DecodeFn: func(r *Reader) (SorobanAddressCredentials, error) {
		var out SorobanAddressCredentials
		addr, err := SCAddressCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Address = addr
		nonce, err := r.ReadI64()
		if err != nil {
			return out, err
		}
		out.Nonce = nonce
		exp, err := r.ReadU32()
		if err != nil {
			return out, err
		}
		out.SignatureExpirationLedger = exp
		sig, err := decodeSCVal(r)
		if err != nil {
			return out, err
		}
		out.Signature = sig
		return out, nil
	},
}

// SorobanCredentials is either "use the invoking transaction's source
// account" (no extra signature needed) or an address-scoped, separately
// signed authorization.
type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address SorobanAddressCredentials
}

func (c SorobanCredentials) ArmName() string {
	if c.Type == SorobanCredentialsAddress {
		return "Address"
	}
	return "SourceAccount"
}

var SorobanCredentialsCodec = Codec[SorobanCredentials]{
	EncodeFn: func(w *Writer, v SorobanCredentials) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case SorobanCredentialsSourceAccount:
			return nil
		case SorobanCredentialsAddress:
			return sorobanAddressCredentialsCodec.EncodeFn(w, v.Address)
		default:
			return newErrf(InvalidValue, "unknown SorobanCredentials type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (SorobanCredentials, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return SorobanCredentials{}, err
		}
		var out SorobanCredentials
		out.Type = SorobanCredentialsType(disc)
		switch out.Type {
		case SorobanCredentialsSourceAccount:
		case SorobanCredentialsAddress:
			a, err := sorobanAddressCredentialsCodec.DecodeFn(r)
			if err != nil {
				return SorobanCredentials{}, err
			}
			out.Address = a
		default:
			return SorobanCredentials{}, newErrf(InvalidUnionDiscriminant, "unknown SorobanCredentials type %d", disc)
		}
		return out, nil
	},
}

// SorobanAuthorizedFunctionType discriminates SorobanAuthorizedFunction.
type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionContractFn       SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionCreateContractFn SorobanAuthorizedFunctionType = 1
)

// InvokeContractArgs names the contract, function, and arguments of one
// authorized call.
type InvokeContractArgs struct {
	ContractAddress SCAddress
	FunctionName    string
	Args            []SCVal
}

var invokeContractArgsCodec = Codec[InvokeContractArgs]{
	EncodeFn: func(w *Writer, v InvokeContractArgs) error {
		if err := SCAddressCodec.EncodeFn(w, v.ContractAddress); err != nil {
			return err
		}
		if err := w.WriteString(v.FunctionName, MaxSymbolBytes); err != nil {
			return err
		}
		done, err := w.enterDepth()
		if err != nil {
			return err
		}
		defer done()
		if err := w.WriteArrayLen(len(v.Args), 0); err != nil {
			return err
		}
		for _, a := range v.Args {
			if err := encodeSCVal(w, a); err != nil {
				return err
			}
		}
		return nil
	},
	DecodeFn: func(r *Reader) (InvokeContractArgs, error) {
		var out InvokeContractArgs
		addr, err := SCAddressCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.ContractAddress = addr
		name, err := r.ReadString(MaxSymbolBytes)
		if err != nil {
			return out, err
		}
		out.FunctionName = name
		done, err := r.enterDepth()
		if err != nil {
			return out, err
		}
		defer done()
		n, err := r.ReadArrayLen(0)
		if err != nil {
			return out, err
		}
		out.Args = make([]SCVal, 0, n)
		for i := uint32(0); i < n; i++ {
			a, err := decodeSCVal(r)
			if err != nil {
				return out, err
			}
			out.Args = append(out.Args, a)
		}
		return out, nil
	},
}

// CreateContractHostFnArgs is carried opaque: this repo authorizes and
// replays invocation trees but does not implement contract deployment, so
// the wasm/executable payload is kept as raw bytes rather than decoded
// further (spec.md §11 Non-goals: no host-function execution).
type CreateContractHostFnArgs struct {
	Opaque []byte
}

var createContractHostFnArgsCodec = Codec[CreateContractHostFnArgs]{
	EncodeFn: func(w *Writer, v CreateContractHostFnArgs) error {
		return w.WriteVarOpaque(v.Opaque, 0)
	},
	DecodeFn: func(r *Reader) (CreateContractHostFnArgs, error) {
		b, err := r.ReadVarOpaque(0)
		if err != nil {
			return CreateContractHostFnArgs{}, err
		}
		return CreateContractHostFnArgs{Opaque: b}, nil
	},
}

// SorobanAuthorizedFunction is the invocation or contract-creation request
// one authorization entry covers.
type SorobanAuthorizedFunction struct {
	Type             SorobanAuthorizedFunctionType
	ContractFn       InvokeContractArgs
	CreateContractFn CreateContractHostFnArgs
}

func (f SorobanAuthorizedFunction) ArmName() string {
	if f.Type == SorobanAuthorizedFunctionCreateContractFn {
		return "CreateContractHostFn"
	}
	return "ContractFn"
}

var sorobanAuthorizedFunctionCodec = Codec[SorobanAuthorizedFunction]{
	EncodeFn: func(w *Writer, v SorobanAuthorizedFunction) error {
		if err := I32.EncodeFn(w, int32(v.Type)); err != nil {
			return err
		}
		switch v.Type {
		case SorobanAuthorizedFunctionContractFn:
			return invokeContractArgsCodec.EncodeFn(w, v.ContractFn)
		case SorobanAuthorizedFunctionCreateContractFn:
			return createContractHostFnArgsCodec.EncodeFn(w, v.CreateContractFn)
		default:
			return newErrf(InvalidValue, "unknown SorobanAuthorizedFunction type %d", v.Type)
		}
	},
	DecodeFn: func(r *Reader) (SorobanAuthorizedFunction, error) {
		disc, err := I32.DecodeFn(r)
		if err != nil {
			return SorobanAuthorizedFunction{}, err
		}
		var out SorobanAuthorizedFunction
		out.Type = SorobanAuthorizedFunctionType(disc)
		switch out.Type {
		case SorobanAuthorizedFunctionContractFn:
			f, err := invokeContractArgsCodec.DecodeFn(r)
			if err != nil {
				return SorobanAuthorizedFunction{}, err
			}
			out.ContractFn = f
		case SorobanAuthorizedFunctionCreateContractFn:
			f, err := createContractHostFnArgsCodec.DecodeFn(r)
			if err != nil {
				return SorobanAuthorizedFunction{}, err
			}
			out.CreateContractFn = f
		default:
			return SorobanAuthorizedFunction{}, newErrf(InvalidUnionDiscriminant, "unknown SorobanAuthorizedFunction type %d", disc)
		}
		return out, nil
	},
}

// MaxSubInvocations bounds one invocation node's direct children. The
// schema itself is unbounded; this repo enforces a repo-defined ceiling so
// that a malicious or corrupt payload cannot force unbounded allocation
// (spec.md §5 byte/depth limits apply the same discipline to this tree).
const MaxSubInvocations = 64

// SorobanAuthorizedInvocation is one node of the authorization call tree:
// a function to invoke plus the sub-invocations it is permitted to make.
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

var sorobanAuthorizedInvocationCodec = Lazy("SorobanAuthorizedInvocation", func() Codec[SorobanAuthorizedInvocation] {
	return Codec[SorobanAuthorizedInvocation]{
		EncodeFn: encodeSorobanAuthorizedInvocation,
		DecodeFn: decodeSorobanAuthorizedInvocation,
	}
})

// SorobanAuthorizedInvocationCodec is the public codec for invocation trees.
func SorobanAuthorizedInvocationCodec() Codec[SorobanAuthorizedInvocation] {
	return sorobanAuthorizedInvocationCodec
}

func encodeSorobanAuthorizedInvocation(w *Writer, v SorobanAuthorizedInvocation) error {
	if err := sorobanAuthorizedFunctionCodec.EncodeFn(w, v.Function); err != nil {
		return err
	}
	done, err := w.enterDepth()
	if err != nil {
		return err
	}
	defer done()
	if err := w.WriteArrayLen(len(v.SubInvocations), MaxSubInvocations); err != nil {
		return err
	}
	for _, sub := range v.SubInvocations {
		if err := encodeSorobanAuthorizedInvocation(w, sub); err != nil {
			return err
		}
	}
	return nil
}

func decodeSorobanAuthorizedInvocation(r *Reader) (SorobanAuthorizedInvocation, error) {
	var out SorobanAuthorizedInvocation
	fn, err := sorobanAuthorizedFunctionCodec.DecodeFn(r)
	if err != nil {
		return out, err
	}
	out.Function = fn
	done, err := r.enterDepth()
	if err != nil {
		return out, err
	}
	defer done()
	n, err := r.ReadArrayLen(MaxSubInvocations)
	if err != nil {
		return out, err
	}
	out.SubInvocations = make([]SorobanAuthorizedInvocation, 0, n)
	for i := uint32(0); i < n; i++ {
		sub, err := decodeSorobanAuthorizedInvocation(r)
		if err != nil {
			return out, err
		}
		out.SubInvocations = append(out.SubInvocations, sub)
	}
	return out, nil
}

// SorobanAuthorizationEntry pairs a credential (who is authorizing) with the
// invocation tree it authorizes (spec.md §11).
type SorobanAuthorizationEntry struct {
	Credentials     SorobanCredentials
	RootInvocation  SorobanAuthorizedInvocation
}

var SorobanAuthorizationEntryCodec = Codec[SorobanAuthorizationEntry]{
	EncodeFn: func(w *Writer, v SorobanAuthorizationEntry) error {
		if err := SorobanCredentialsCodec.EncodeFn(w, v.Credentials); err != nil {
			return err
		}
		return encodeSorobanAuthorizedInvocation(w, v.RootInvocation)
	},
	DecodeFn: func(r *Reader) (SorobanAuthorizationEntry, error) {
		var out SorobanAuthorizationEntry
		creds, err := SorobanCredentialsCodec.DecodeFn(r)
		if err != nil {
			return out, err
		}
		out.Credentials = creds
		inv, err := decodeSorobanAuthorizedInvocation(r)
		if err != nil {
			return out, err
		}
		out.RootInvocation = inv
		return out, nil
	},
}
