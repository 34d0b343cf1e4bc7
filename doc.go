/*
Package dirdiff decides whether two files or byte streams have the same
content. Besides exact comparison it can ignore the revision metadata that
version control systems embed into files, so that a locally checked out copy
and the repository copy count as equal when they only differ in that
metadata. Only a verdict is computed, no diff.

The inputs are read in chunks into two buffers of fixed size (see
Compare.BufferSize). Memory use does not depend on the size of the inputs.

# Modes

With Exact, both inputs must be byte-for-byte identical.

With RCSTagTolerant, RCS keyword tags match each other whatever they
contain. A tag starts with '$' followed by one of the keywords

	Log Id Revision Source Author Date State Header

and is either the bare keyword "$Id$" or has the form

	$Id: filecmp.c,v 1.3 2001/08/15 11:12:44 paulus Exp $

with the closing '$' on the same line. Two tags at the same position are
equal even if they differ in length. A '$' that does not start a tag is
compared like any other byte. The Log tag also covers the history lines
following it as long as each of them starts with a comment leader, that is
" *" not followed by '/', or "#":

	$Log: filecmp.c,v $
	 * Revision 1.3  2001/08/15 11:12:44  paulus
	 * Added the BK mode.
	body text is compared again

A tag candidate that is not terminated within MaxTagLen bytes, or that is
longer than the buffer, is not a tag.

With BKTagTolerant, everything from the marker "BK Id: " up to the end of
its line is ignored:

	static char *sccsid = "BK Id: SCCS/s.filecmp.c 1.5 01/08/15 paulus";

# Trees

Compare.Dirs walks two directory trees and reports the entries that exist in
only one of them, have different types, or differ in content under the
selected mode.
*/
package dirdiff
