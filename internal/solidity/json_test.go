package solidity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// ownedContractJSON is a minimal tagged-union AST for:
//
//	contract Owned {
//	    address owner;
//	    modifier onlyOwner() {
//	        require(msg.sender == owner, "caller is not the owner");
//	        _;
//	    }
//	    function transferOwnership(address newOwner) public onlyOwner {
//	        owner = newOwner;
//	    }
//	}
const ownedContractJSON = `{
  "children": [
    {
      "astKind": "ContractDefinition",
      "Name": "Owned",
      "Kind": "contract",
      "IsAbstract": false,
      "BaseContracts": [],
      "SubNodes": [
        {
          "astKind": "VariableDefinition",
          "Name": "owner",
          "Type": {"Name": "address"},
          "Visibility": "internal"
        },
        {
          "astKind": "FunctionDefinition",
          "Name": "onlyOwner",
          "Kind": "modifier",
          "Parameters": [],
          "Body": {
            "Statements": [
              {
                "astKind": "ExpressionStatement",
                "Expr": {
                  "astKind": "RequireExpression",
                  "Condition": {
                    "astKind": "BinaryOp",
                    "Op": "==",
                    "Left": {"astKind": "MsgExpression", "Property": "sender"},
                    "Right": {"astKind": "Identifier", "Name": "owner"}
                  },
                  "Message": "caller is not the owner"
                }
              },
              {"astKind": "PlaceholderStatement"}
            ]
          }
        },
        {
          "astKind": "FunctionDefinition",
          "Name": "transferOwnership",
          "Kind": "function",
          "Visibility": "public",
          "Parameters": [{"Name": "newOwner", "Type": {"Name": "address"}}],
          "Modifiers": [{"Name": "onlyOwner", "Args": []}],
          "Body": {
            "Statements": [
              {
                "astKind": "ExpressionStatement",
                "Expr": {
                  "astKind": "Assignment",
                  "Op": "=",
                  "Target": {"astKind": "Identifier", "Name": "owner"},
                  "Value": {"astKind": "Identifier", "Name": "newOwner"}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestUnmarshalSourceUnitDecodesNestedTaggedUnions(t *testing.T) {
	t.Parallel()

	var unit SourceUnit
	require.NoError(t, json.Unmarshal([]byte(ownedContractJSON), &unit))
	require.Len(t, unit.Children, 1)

	contract, ok := unit.Children[0].(*ContractDefinition)
	require.True(t, ok)
	require.Equal(t, "Owned", contract.Name)
	require.Equal(t, "contract", contract.Kind)
	require.Len(t, contract.SubNodes, 3)

	modifier, ok := contract.SubNodes[1].(*FunctionDefinition)
	require.True(t, ok)
	require.Equal(t, FunctionKindModifier, modifier.Kind)
	require.Len(t, modifier.Body.Statements, 2)

	exprStmt, ok := modifier.Body.Statements[0].(*ExpressionStatement)
	require.True(t, ok)
	req, ok := exprStmt.Expr.(*RequireExpression)
	require.True(t, ok)
	require.Equal(t, "caller is not the owner", req.Message)

	bin, ok := req.Condition.(*BinaryOp)
	require.True(t, ok)
	require.Equal(t, "==", bin.Op)
	_, ok = bin.Left.(*MsgExpression)
	require.True(t, ok)

	_, ok = modifier.Body.Statements[1].(*PlaceholderStatement)
	require.True(t, ok)

	fn, ok := contract.SubNodes[2].(*FunctionDefinition)
	require.True(t, ok)
	require.Equal(t, "transferOwnership", fn.Name)
	require.Len(t, fn.Modifiers, 1)
	require.Equal(t, "onlyOwner", fn.Modifiers[0].Name)
}

func TestDomainLevelKindFieldSurvivesDiscriminatorDecode(t *testing.T) {
	t.Parallel()

	// Regression guard: the wire discriminator is "astKind", not "kind",
	// specifically so it cannot clobber ContractDefinition/FunctionDefinition's
	// own domain-level "Kind" field during case-insensitive JSON matching.
	var unit SourceUnit
	require.NoError(t, json.Unmarshal([]byte(ownedContractJSON), &unit))
	contract := unit.Children[0].(*ContractDefinition)
	require.Equal(t, "contract", contract.Kind)
}
