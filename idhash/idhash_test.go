package idhash

import (
	"testing"

	"corexdr/xdr"
)

func TestPoolIDDeterministicAndOrderSensitive(t *testing.T) {
	issuerA := xdr.AccountID{Ed25519: [32]byte{1}}
	issuerB := xdr.AccountID{Ed25519: [32]byte{2}}
	assetA, _ := xdr.NewCreditAsset("AAA", issuerA)
	assetB, _ := xdr.NewCreditAsset("BBB", issuerB)
	if !xdr.AssetLess(assetA, assetB) {
		assetA, assetB = assetB, assetA
	}

	id1, err := PoolID(assetA, assetB, 30)
	if err != nil {
		t.Fatalf("PoolID: %v", err)
	}
	id2, err := PoolID(assetA, assetB, 30)
	if err != nil {
		t.Fatalf("PoolID: %v", err)
	}
	if id1 != id2 {
		t.Fatal("expected same asset pair and fee to derive the same pool id")
	}

	idDifferentFee, err := PoolID(assetA, assetB, 100)
	if err != nil {
		t.Fatalf("PoolID: %v", err)
	}
	if idDifferentFee == id1 {
		t.Fatal("expected different fee to derive a different pool id")
	}
}

func TestPoolIDRejectsUnorderedAssets(t *testing.T) {
	issuerA := xdr.AccountID{Ed25519: [32]byte{1}}
	issuerB := xdr.AccountID{Ed25519: [32]byte{2}}
	assetA, _ := xdr.NewCreditAsset("AAA", issuerA)
	assetB, _ := xdr.NewCreditAsset("BBB", issuerB)
	if !xdr.AssetLess(assetA, assetB) {
		assetA, assetB = assetB, assetA
	}
	if _, err := PoolID(assetB, assetA, 30); err == nil {
		t.Fatal("expected out-of-order asset pair to be rejected")
	}
}

func TestAssetContractIDDomainSeparatedByNetwork(t *testing.T) {
	issuer := xdr.AccountID{Ed25519: [32]byte{3}}
	asset, _ := xdr.NewCreditAsset("USD", issuer)
	netA := [32]byte{1}
	netB := [32]byte{2}

	idA1, err := AssetContractID(netA, asset)
	if err != nil {
		t.Fatalf("AssetContractID: %v", err)
	}
	idA2, err := AssetContractID(netA, asset)
	if err != nil {
		t.Fatalf("AssetContractID: %v", err)
	}
	if idA1 != idA2 {
		t.Fatal("expected same network and asset to derive the same contract id")
	}

	idB, err := AssetContractID(netB, asset)
	if err != nil {
		t.Fatalf("AssetContractID: %v", err)
	}
	if idB == idA1 {
		t.Fatal("expected different network ids to derive different contract ids")
	}
}

func TestAddressContractIDDeterministicAndSaltSensitive(t *testing.T) {
	deployer := xdr.SCAddress{Type: xdr.SCAddressTypeAccount, AccountID: xdr.AccountID{Ed25519: [32]byte{4}}}
	net := [32]byte{5}
	salt1 := [32]byte{1}
	salt2 := [32]byte{2}

	id1, err := AddressContractID(net, deployer, salt1)
	if err != nil {
		t.Fatalf("AddressContractID: %v", err)
	}
	id1Again, err := AddressContractID(net, deployer, salt1)
	if err != nil {
		t.Fatalf("AddressContractID: %v", err)
	}
	if id1 != id1Again {
		t.Fatal("expected same deployer, network and salt to derive the same contract id")
	}

	id2, err := AddressContractID(net, deployer, salt2)
	if err != nil {
		t.Fatalf("AddressContractID: %v", err)
	}
	if id2 == id1 {
		t.Fatal("expected different salts to derive different contract ids")
	}
}
