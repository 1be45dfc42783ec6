package xdr

import "testing"

func TestLiquidityPoolParametersRoundTrip(t *testing.T) {
	issuer := AccountID{Ed25519: [32]byte{1}}
	usd, _ := NewCreditAsset("USD", issuer)
	params := LiquidityPoolParameters{
		Type: LiquidityPoolConstantProduct,
		ConstantProduct: LiquidityPoolConstantProductParameters{
			AssetA: NativeAsset(),
			AssetB: usd,
			Fee:    30,
		},
	}
	b, err := LiquidityPoolParametersCodec.Encode(params)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := LiquidityPoolParametersCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ConstantProduct.Fee != 30 {
		t.Fatalf("fee mismatch: %+v", got)
	}
}

func TestContractIDPreimageRoundTrip(t *testing.T) {
	deployer := SCAddress{Type: SCAddressTypeAccount, AccountID: AccountID{Ed25519: [32]byte{1}}}
	fromAddress := ContractIDPreimage{
		Type:        ContractIDPreimageFromAddress,
		FromAddress: ContractIDPreimageAddressPart{Address: deployer, Salt: [32]byte{2}},
	}
	b, err := ContractIDPreimageCodec.Encode(fromAddress)
	if err != nil {
		t.Fatalf("encode from address: %v", err)
	}
	got, err := ContractIDPreimageCodec.Decode(b)
	if err != nil || got.Type != ContractIDPreimageFromAddress {
		t.Fatalf("decode from address: %v, %v", got, err)
	}

	issuer := AccountID{Ed25519: [32]byte{3}}
	asset, _ := NewCreditAsset("USD", issuer)
	fromAsset := ContractIDPreimage{Type: ContractIDPreimageFromAsset, FromAsset: asset}
	ab, err := ContractIDPreimageCodec.Encode(fromAsset)
	if err != nil {
		t.Fatalf("encode from asset: %v", err)
	}
	gotAsset, err := ContractIDPreimageCodec.Decode(ab)
	if err != nil || gotAsset.Type != ContractIDPreimageFromAsset {
		t.Fatalf("decode from asset: %v, %v", gotAsset, err)
	}
}

func TestHashIDPreimageRoundTrip(t *testing.T) {
	issuer := AccountID{Ed25519: [32]byte{4}}
	asset, _ := NewCreditAsset("USD", issuer)
	preimage := HashIDPreimage{
		Type: EnvelopeTypeContractID,
		ContractID: HashIDPreimageContractID{
			NetworkID:          Hash{1, 2, 3},
			ContractIDPreimage: ContractIDPreimage{Type: ContractIDPreimageFromAsset, FromAsset: asset},
		},
	}
	b, err := HashIDPreimageCodec.Encode(preimage)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := HashIDPreimageCodec.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ContractID.NetworkID != preimage.ContractID.NetworkID {
		t.Fatalf("network id mismatch: %+v", got.ContractID)
	}
}
