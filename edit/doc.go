// Package edit splices declarations into and out of document text.
//
// Every function takes the whole text and returns a new one; the input is never
// modified, and on error it is returned as is. Lookups run in strict mode, so a
// malformed construct on the way to the target aborts the edit with
// syntax.ErrMalformed instead of guessing.
//
// Writing a variable whose namespaces do not exist yet creates them:
//
//	out, _ := edit.WriteVariable("", value.FromBool("ns1/ns2/flag", true))
//
// yields
//
//	ns ns1
//	{
//		ns ns2
//		{
//			Bool flag = "true";
//		}
//	}
package edit
