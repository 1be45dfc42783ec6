package xdr

import "testing"

func TestOperationBodyRoundTripCreateAccountAndPayment(t *testing.T) {
	dest := AccountID{Ed25519: [32]byte{1}}
	create := OperationBody{Type: OpTypeCreateAccount, CreateAccount: CreateAccountOp{Destination: dest, StartingBalance: 100}}
	b, err := OperationBodyCodec.Encode(create)
	if err != nil {
		t.Fatalf("encode create account: %v", err)
	}
	got, err := OperationBodyCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode create account: %v", err)
	}
	if got.CreateAccount != create.CreateAccount {
		t.Fatalf("create account mismatch: %+v", got.CreateAccount)
	}

	payment := OperationBody{
		Type: OpTypePayment,
		Payment: PaymentOp{
			Destination: MuxedAccount{Type: KeyTypeEd25519, Ed25519: [32]byte{2}},
			Asset:       NativeAsset(),
			Amount:      500,
		},
	}
	pb, err := OperationBodyCodec.Encode(payment)
	if err != nil {
		t.Fatalf("encode payment: %v", err)
	}
	gotPayment, err := OperationBodyCodec.Decode(pb)
	if err != nil {
		t.Fatalf("decode payment: %v", err)
	}
	if gotPayment.Payment.Amount != 500 {
		t.Fatalf("payment amount mismatch: %+v", gotPayment.Payment)
	}
}

func TestOperationBodyRoundTripInvokeHostFunction(t *testing.T) {
	contractAddr := SCAddress{Type: SCAddressTypeContract, ContractID: [32]byte{7}}
	body := OperationBody{
		Type: OpTypeInvokeHostFunction,
		InvokeHostFunction: InvokeHostFunctionOp{
			HostFunction: HostFunction{
				Type: HostFunctionTypeInvokeContract,
				InvokeContract: InvokeContractArgs{
					ContractAddress: contractAddr,
					FunctionName:    "transfer",
					Args:            []SCVal{{Type: SCVU32, U32: 10}},
				},
			},
			Auth: []SorobanAuthorizationEntry{
				{
					Credentials: SorobanCredentials{Type: SorobanCredentialsSourceAccount},
					RootInvocation: SorobanAuthorizedInvocation{
						Function: SorobanAuthorizedFunction{
							Type:       SorobanAuthorizedFunctionContractFn,
							ContractFn: InvokeContractArgs{ContractAddress: contractAddr, FunctionName: "transfer"},
						},
					},
				},
			},
		},
	}
	b, err := OperationBodyCodec.Encode(body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := OperationBodyCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.InvokeHostFunction.HostFunction.InvokeContract.FunctionName != "transfer" {
		t.Fatalf("function name mismatch: %+v", got.InvokeHostFunction)
	}
	if len(got.InvokeHostFunction.Auth) != 1 {
		t.Fatalf("auth entries mismatch: %+v", got.InvokeHostFunction.Auth)
	}
}

func TestOperationRoundTripWithOptionalSource(t *testing.T) {
	src := MuxedAccount{Type: KeyTypeEd25519, Ed25519: [32]byte{3}}
	op := Operation{
		SourceAccount: &src,
		Body:          OperationBody{Type: OpTypeCreateAccount, CreateAccount: CreateAccountOp{Destination: AccountID{}, StartingBalance: 1}},
	}
	b, err := OperationCodec.Encode(op)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := OperationCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SourceAccount == nil || *got.SourceAccount != src {
		t.Fatalf("source account mismatch: %+v", got.SourceAccount)
	}

	noSrc := Operation{Body: OperationBody{Type: OpTypeCreateAccount}}
	nb, err := OperationCodec.Encode(noSrc)
	if err != nil {
		t.Fatalf("encode no source: %v", err)
	}
	gotNoSrc, err := OperationCodec.Decode(nb)
	if err != nil || gotNoSrc.SourceAccount != nil {
		t.Fatalf("expected nil source account, got %v, %v", gotNoSrc.SourceAccount, err)
	}
}
